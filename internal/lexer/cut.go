package lexer

import (
	"strings"
	"unicode"

	"mizlex/internal/symbol"
	"mizlex/internal/token"
)

// Каждый cutter отрезает префикс input и возвращает токен и остаток.
// ok == false: префикс не распознан, input не тронут.
// Line/Col у токена не заполняются: это делает Lex.

// CutSymbol cuts the longest vocabulary symbol that is a prefix of input and
// ends on a word boundary.
func CutSymbol(table *symbol.Table, input string) (tok token.Token, rest string, ok bool) {
	if table == nil {
		return token.Token{}, input, false
	}
	e, ok := table.LongestPrefix(input, func(e symbol.Entry) bool {
		return boundaryAt(input, len(e.Text))
	})
	if !ok {
		return token.Token{}, input, false
	}
	return token.Token{Kind: token.Symbol, Raw: e.Text, Tag: e.Tag()}, input[len(e.Text):], true
}

// CutReservedWord cuts a keyword, trying longer keywords first.
func CutReservedWord(input string) (tok token.Token, rest string, ok bool) {
	for _, w := range token.ReservedWords() {
		if strings.HasPrefix(input, w) && boundaryAt(input, len(w)) {
			return token.Token{Kind: token.Reserved, Raw: w, Tag: w}, input[len(w):], true
		}
	}
	return token.Token{}, input, false
}

// CutIdentifier cuts [A-Za-z][A-Za-z0-9_']*.
func CutIdentifier(input string) (tok token.Token, rest string, ok bool) {
	id := ReadIdentifier(input)
	if id == "" || !boundaryAt(input, len(id)) {
		return token.Token{}, input, false
	}
	return token.Token{Kind: token.Ident, Raw: id, Tag: id}, input[len(id):], true
}

// CutNumeral cuts a decimal numeral. "0" is allowed, other leading zeros are not.
func CutNumeral(input string) (tok token.Token, rest string, ok bool) {
	n := 0
	for n < len(input) && isDec(input[n]) {
		n++
	}
	if n == 0 || (n > 1 && input[0] == '0') || !boundaryAt(input, n) {
		return token.Token{}, input, false
	}
	return token.Token{Kind: token.Numeral, Raw: input[:n], Tag: input[:n]}, input[n:], true
}

// ReadIdentifier returns the identifier prefix of s, or "" if s does not
// start with a letter.
func ReadIdentifier(s string) string {
	if s == "" || !isLetter(s[0]) {
		return ""
	}
	i := 1
	for i < len(s) && isIdentContinue(s[i]) {
		i++
	}
	return s[:i]
}

// ReadUntilSpace returns the prefix of s up to the first white space.
func ReadUntilSpace(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isIdentContinue(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_' || b == '\''
}
