package lexer

import (
	"unicode"
	"unicode/utf8"
)

// IsWordBoundary reports whether a token may end between a and b.
// Letters and digits form one running word; any other rune on either
// side (underscore, prime, brackets, punctuation, space) breaks it.
func IsWordBoundary(a, b rune) bool {
	return !(isWordRune(a) && isWordRune(b))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundaryAt checks the boundary between s[:n] and s[n:]. The end of input
// is always a boundary.
func boundaryAt(s string, n int) bool {
	if n <= 0 || n >= len(s) {
		return true
	}
	a, _ := utf8.DecodeLastRuneInString(s[:n])
	b, _ := utf8.DecodeRuneInString(s[n:])
	return IsWordBoundary(a, b)
}
