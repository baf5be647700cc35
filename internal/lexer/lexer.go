package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"mizlex/internal/diag"
	"mizlex/internal/source"
	"mizlex/internal/symbol"
	"mizlex/internal/token"
)

// ErrTableNotIndexed is returned when the symbol table's length index was
// not built after its last Load.
var ErrTableNotIndexed = errors.New("symbol table has no length index; call BuildLengthIndex after Load")

// Error reports a character no cutter accepts.
type Error struct {
	Char rune
	Line uint32
	Col  uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: unrecognized character %q", e.Line, e.Col, e.Char)
}

// DiagCode implements diag.Coded.
func (e *Error) DiagCode() diag.Code {
	return diag.LexUnknownChar
}

// Result is the lexed text proper.
type Result struct {
	Lines     []string // one tagged line per input line
	Tokens    []token.Token
	Positions PositionMap
}

// Lexer drives the cutters over lines. It holds no per-call state, so one
// Lexer may serve concurrent calls.
type Lexer struct {
	table *symbol.Table
	opts  Options
}

func New(table *symbol.Table, opts Options) *Lexer {
	return &Lexer{table: table, opts: opts}
}

// Lex tags every line independently. Source line numbers start at 1.
// On the first unrecognized character it returns an *Error and no result.
func (lx *Lexer) Lex(lines []string) (Result, error) {
	return lx.lex(lines, 0)
}

// LexDocument strips comments, splits the document and lexes its text
// proper. Source positions refer to the original document lines.
func (lx *Lexer) LexDocument(lines []string) (Result, Document, error) {
	doc, err := SeparateEnvironmentAndTextProper(RemoveComment(lines))
	if err != nil {
		return Result{}, Document{}, err
	}
	res, err := lx.LexText(doc)
	if err != nil {
		return Result{}, doc, err
	}
	return res, doc, nil
}

// LexText lexes the text proper of an already split document, numbering
// source lines from the start of the environment.
func (lx *Lexer) LexText(doc Document) (Result, error) {
	return lx.lex(doc.TextProper, len(doc.Environment))
}

func (lx *Lexer) lex(lines []string, lineOffset int) (Result, error) {
	if lx.table == nil || !lx.table.Indexed() {
		return Result{}, ErrTableNotIndexed
	}
	res := Result{Lines: make([]string, 0, len(lines))}
	var out strings.Builder
	for i, line := range lines {
		srcLine := u32(lineOffset + i + 1)
		outLine := u32(i + 1)
		out.Reset()

		rest := line
		for rest != "" {
			col := u32(len(line) - len(rest) + 1)
			r, sz := utf8.DecodeRuneInString(rest)
			if unicode.IsSpace(r) {
				rest = rest[sz:]
				continue
			}

			tok, next, ok := lx.cut(rest)
			if !ok {
				lx.report(diag.LexUnknownChar, source.LineCol{Line: srcLine, Col: col}, u32(sz),
					fmt.Sprintf("unrecognized character %q", r))
				return Result{}, &Error{Char: r, Line: srcLine, Col: col}
			}
			rest = next
			tok.Line, tok.Col = srcLine, col

			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			res.Positions = append(res.Positions, Position{
				Index:   len(res.Tokens),
				Line:    srcLine,
				Col:     col,
				Len:     u32(tok.Len()),
				OutLine: outLine,
				OutCol:  u32(out.Len() + 1),
				OutLen:  u32(len(tok.Tag)),
			})
			out.WriteString(tok.Tag)
			res.Tokens = append(res.Tokens, tok)
		}
		res.Lines = append(res.Lines, out.String())
	}
	return res, nil
}

// cut tries the cutters in priority order.
func (lx *Lexer) cut(s string) (token.Token, string, bool) {
	if tok, rest, ok := CutSymbol(lx.table, s); ok {
		return tok, rest, true
	}
	if tok, rest, ok := CutReservedWord(s); ok {
		return tok, rest, true
	}
	if tok, rest, ok := CutIdentifier(s); ok {
		return tok, rest, true
	}
	return CutNumeral(s)
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("position overflow: %w", err))
	}
	return v
}
