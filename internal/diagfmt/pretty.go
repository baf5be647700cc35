package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mizlex/internal/diag"
	"mizlex/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		loc, file, start, end := locate(fs, d.Primary, opts.PathMode)
		fmt.Fprintf(w, "%s%s %s: %s\n",
			pal.path.Sprint(loc),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		if file != nil && start.Line > 0 {
			writeContext(w, pal, file, start, end, int(opts.Context))
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nloc, _, _, _ := locate(fs, n.Span, opts.PathMode)
			fmt.Fprintf(w, "  note: %s%s\n", nloc, n.Msg)
		}
	}
}

// locate возвращает "path:line:col: " или "" если span не привязан к файлу.
func locate(fs *source.FileSet, sp source.Span, mode PathMode) (string, *source.File, source.LineCol, source.LineCol) {
	if fs == nil || int(sp.File) >= fs.Len() {
		return "", nil, source.LineCol{}, source.LineCol{}
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d: ", formatPath(f, fs, mode), start.Line, start.Col), f, start, end
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath(mode.String(), fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

func writeContext(w io.Writer, pal palette, f *source.File, start, end source.LineCol, context int) {
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + context
	width := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(uint32(ln)) // #nosec G115 -- ln > 0
		if ln != int(start.Line) && text == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), text)
		if ln != int(start.Line) {
			continue
		}
		n := 1
		if end.Line == start.Line && end.Col > start.Col {
			n = int(end.Col - start.Col)
		}
		pad := leadingPad(text, int(start.Col)-1)
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", width, ""),
			pad,
			pal.caret.Sprint("^"+strings.Repeat("~", n-1)),
		)
	}
}

// leadingPad keeps tabs so the caret lines up with the source text.
func leadingPad(text string, n int) string {
	if n > len(text) {
		n = len(text)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if text[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
