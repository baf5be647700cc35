package token

// Token is one unit cut from a text-proper line.
type Token struct {
	Kind Kind
	Raw  string // source text
	Tag  string // text written to the output line
	Line uint32
	Col  uint32
}

// Len returns the number of source bytes the token covers.
func (t Token) Len() int {
	return len(t.Raw)
}

// IsRetagged reports whether the output text differs from the source text.
func (t Token) IsRetagged() bool {
	return t.Tag != t.Raw
}
