package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"mizlex/internal/diag"
	"mizlex/internal/token"
)

// Document is an article split at its 'begin' line.
type Document struct {
	Environment []string
	TextProper  []string // starts with the 'begin' line
}

// Lines returns both regions concatenated, i.e. the original lines.
func (d Document) Lines() []string {
	out := make([]string, 0, len(d.Environment)+len(d.TextProper))
	out = append(out, d.Environment...)
	return append(out, d.TextProper...)
}

// SplitError is returned when no 'begin' line exists.
type SplitError struct {
	Lines int // lines scanned
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("no %q line found in %d lines: cannot separate environment from text proper", token.Begin, e.Lines)
}

// DiagCode implements diag.Coded.
func (e *SplitError) DiagCode() diag.Code {
	return diag.DocMissingBegin
}

// SeparateEnvironmentAndTextProper splits lines before the first line whose
// first word, ignoring leading space and comments, is the keyword 'begin'.
func SeparateEnvironmentAndTextProper(lines []string) (Document, error) {
	for i, line := range lines {
		if isBeginLine(line) {
			return Document{Environment: lines[:i:i], TextProper: lines[i:]}, nil
		}
	}
	return Document{}, &SplitError{Lines: len(lines)}
}

func isBeginLine(line string) bool {
	s := strings.TrimLeftFunc(RemoveCommentInLine(line), unicode.IsSpace)
	tok, _, ok := CutReservedWord(s)
	return ok && tok.Raw == token.Begin
}
