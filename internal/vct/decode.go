// Package vct decodes vocabulary files in the mml.vct layout:
//
//	#AFF_1
//	G0 K0 L0 M0 O0 R1 U0 V0
//	RLIN
//	#AFVECT0
//	O. 100
//	MAffVect
//
// A '#' line opens an article. Other lines start with a category letter
// followed by the symbol; functors may carry a priority after a space.
// Count lines and blank lines are skipped.
package vct

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mizlex/internal/diag"
	"mizlex/internal/symbol"
)

// Vocabulary is one decoded vocabulary file.
type Vocabulary struct {
	Path     string          `msgpack:"path"`
	Sections []symbol.Article `msgpack:"sections"`
}

// Articles implements symbol.Source.
func (v *Vocabulary) Articles() []symbol.Article {
	if v == nil {
		return nil
	}
	return v.Sections
}

// SymbolCount returns the number of symbol lines decoded.
func (v *Vocabulary) SymbolCount() int {
	n := 0
	for _, a := range v.Articles() {
		n += len(a.Symbols)
	}
	return n
}

// SyntaxError points at a malformed vocabulary line.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// DiagCode implements diag.Coded.
func (e *SyntaxError) DiagCode() diag.Code {
	return diag.VctSyntax
}

// DecodeFile opens and decodes path.
func DecodeFile(path string) (*Vocabulary, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode reads a vocabulary from r; name is used in error messages.
func Decode(r io.Reader, name string) (*Vocabulary, error) {
	voc := &Vocabulary{Path: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cur *symbol.Article
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" || isCountLine(line) {
			continue
		}
		if name, ok := strings.CutPrefix(line, "#"); ok {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, &SyntaxError{Path: voc.Path, Line: lineNo, Msg: "empty article name"}
			}
			voc.Sections = append(voc.Sections, symbol.Article{Name: name})
			cur = &voc.Sections[len(voc.Sections)-1]
			continue
		}
		if cur == nil {
			return nil, &SyntaxError{Path: voc.Path, Line: lineNo, Msg: "symbol before first article header"}
		}
		e, err := decodeSymbol(line)
		if err != nil {
			return nil, &SyntaxError{Path: voc.Path, Line: lineNo, Msg: err.Error()}
		}
		e.File = cur.Name
		cur.Symbols = append(cur.Symbols, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", name, err)
	}
	return voc, nil
}

func decodeSymbol(line string) (symbol.Entry, error) {
	cat, err := symbol.ParseCategory(line[0])
	if err != nil {
		return symbol.Entry{}, err
	}
	fields := strings.Fields(line[1:])
	switch {
	case len(fields) == 0:
		return symbol.Entry{}, fmt.Errorf("missing symbol text after %q", line[0])
	case len(fields) > 2:
		return symbol.Entry{}, fmt.Errorf("unexpected text after symbol %q", fields[0])
	}
	e := symbol.Entry{Text: fields[0], Category: cat}
	if len(fields) == 2 {
		if cat != symbol.Functor {
			return symbol.Entry{}, fmt.Errorf("priority given for non-functor symbol %q", fields[0])
		}
		p, err := strconv.Atoi(fields[1])
		if err != nil || p < 0 {
			return symbol.Entry{}, fmt.Errorf("bad priority %q for %q", fields[1], fields[0])
		}
		e.Priority, e.HasPriority = p, true
	}
	return e, nil
}

// isCountLine matches headers like "G0 K0 L0 M1 O2 R0 U0 V3".
func isCountLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		if len(f) < 2 || strings.IndexByte("GKLMORUV", f[0]) < 0 {
			return false
		}
		if _, err := strconv.Atoi(f[1:]); err != nil {
			return false
		}
	}
	return true
}
