package lexer

import (
	"sort"
)

// Position ties one output token to the source bytes it came from.
type Position struct {
	Index int // index into Result.Tokens

	Line uint32 // source line, 1-based
	Col  uint32 // source column, 1-based bytes
	Len  uint32 // source bytes

	OutLine uint32 // output line, 1-based index into Result.Lines
	OutCol  uint32 // column of the tag in the output line, 1-based
	OutLen  uint32 // length of the tag
}

// PositionMap holds one Position per output token, in output order.
type PositionMap []Position

// Lookup finds the token covering the given output coordinates.
func (m PositionMap) Lookup(outLine, outCol uint32) (Position, bool) {
	i := sort.Search(len(m), func(i int) bool {
		p := m[i]
		return p.OutLine > outLine || (p.OutLine == outLine && p.OutCol+p.OutLen > outCol)
	})
	if i == len(m) {
		return Position{}, false
	}
	p := m[i]
	if p.OutLine != outLine || outCol < p.OutCol {
		return Position{}, false
	}
	return p, true
}

// Line returns the positions of the tokens emitted for the given output line.
func (m PositionMap) Line(outLine uint32) PositionMap {
	lo := sort.Search(len(m), func(i int) bool { return m[i].OutLine >= outLine })
	hi := sort.Search(len(m), func(i int) bool { return m[i].OutLine > outLine })
	return m[lo:hi]
}
