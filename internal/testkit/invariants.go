// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"mizlex/internal/lexer"
)

// CheckPositionInvariants verifies a lex result against the lines it was
// produced from (source line numbers start at firstLine):
// 1) every token has exactly one position, in token order
// 2) a position's source slice equals the token's raw text
// 3) a position's output slice equals the token's tag
// 4) positions increase strictly in both input and output order
func CheckPositionInvariants(lines []string, firstLine int, res lexer.Result) error {
	if len(res.Positions) != len(res.Tokens) {
		return fmt.Errorf("%d positions for %d tokens", len(res.Positions), len(res.Tokens))
	}
	var prev lexer.Position
	for i, p := range res.Positions {
		tok := res.Tokens[i]
		if p.Index != i {
			return fmt.Errorf("position %d has index %d", i, p.Index)
		}

		srcIdx := int(p.Line) - firstLine
		if srcIdx < 0 || srcIdx >= len(lines) {
			return fmt.Errorf("position %d: source line %d out of range", i, p.Line)
		}
		line := lines[srcIdx]
		start, end := int(p.Col)-1, int(p.Col)-1+int(p.Len)
		if start < 0 || end > len(line) || line[start:end] != tok.Raw {
			return fmt.Errorf("position %d: source %d:%d+%d does not hold %q", i, p.Line, p.Col, p.Len, tok.Raw)
		}

		outIdx := int(p.OutLine) - 1
		if outIdx < 0 || outIdx >= len(res.Lines) {
			return fmt.Errorf("position %d: output line %d out of range", i, p.OutLine)
		}
		out := res.Lines[outIdx]
		ostart, oend := int(p.OutCol)-1, int(p.OutCol)-1+int(p.OutLen)
		if ostart < 0 || oend > len(out) || out[ostart:oend] != tok.Tag {
			return fmt.Errorf("position %d: output %d:%d does not hold %q", i, p.OutLine, p.OutCol, tok.Tag)
		}

		if i > 0 {
			if !before(prev.Line, prev.Col, p.Line, p.Col) {
				return fmt.Errorf("position %d: source order broken", i)
			}
			if !before(prev.OutLine, prev.OutCol, p.OutLine, p.OutCol) {
				return fmt.Errorf("position %d: output order broken", i)
			}
		}
		prev = p
	}
	return nil
}

func before(l1, c1, l2, c2 uint32) bool {
	return l1 < l2 || (l1 == l2 && c1 < c2)
}
