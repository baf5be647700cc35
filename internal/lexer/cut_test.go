package lexer

import (
	"testing"

	"mizlex/internal/token"
)

type cutFunc func(string) (token.Token, string, bool)

type cutCase struct {
	input string
	tag   string // "" means no match
	rest  string
}

func runCutCases(t *testing.T, cut cutFunc, cases []cutCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tok, rest, ok := cut(tc.input)
			if tc.tag == "" {
				if ok {
					t.Fatalf("expected no match, got (%q, %q)", tok.Tag, rest)
				}
				if rest != tc.input {
					t.Fatalf("declined cut must return input unchanged, got %q", rest)
				}
				return
			}
			if !ok {
				t.Fatalf("expected (%q, %q), got no match", tc.tag, tc.rest)
			}
			if tok.Tag != tc.tag || rest != tc.rest {
				t.Fatalf("got (%q, %q), want (%q, %q)", tok.Tag, rest, tc.tag, tc.rest)
			}
			if tok.Raw+rest != tc.input {
				t.Fatalf("raw %q + rest %q does not reassemble input", tok.Raw, rest)
			}
		})
	}
}

func TestCutSymbol(t *testing.T) {
	tbl := testTable(t)
	cut := func(s string) (token.Token, string, bool) { return CutSymbol(tbl, s) }
	runCutCases(t, cut, []cutCase{
		{".abc def ghi", "__O100_.", "abc def ghi"},
		{"..abc def ghi", "__O100_..", "abc def ghi"},
		{"||..abc def ghi", "__K_||..", "abc def ghi"},
		{"abss def ghi", "", ""},
		{",;:abc||def", ",", ";:abc||def"},
		{",||;:abcdef", ",", "||;:abcdef"},
		{"$1,abcdef", "$1", ",abcdef"},
		{"...||abcdef", "...", "||abcdef"},
		{"||abcdef", "__O100_||", "abcdef"},
		{"= a", "=", " a"},
		{"& sup I in I;", "&", " sup I in I;"},
		{"sup-Semilattice for", "__M_sup-Semilattice", " for"},
		{"abs", "__O_abs", ""},
		{"", "", ""},
	})
}

func TestCutSymbolKind(t *testing.T) {
	tok, _, ok := CutSymbol(testTable(t), "in I")
	if !ok || tok.Kind != token.Symbol || tok.Raw != "in" {
		t.Fatalf("got %+v, %v", tok, ok)
	}
	if _, _, ok := CutSymbol(nil, "in"); ok {
		t.Fatal("nil table must not match")
	}
}

func TestCutReservedWord(t *testing.T) {
	runCutCases(t, CutReservedWord, []cutCase{
		{"qua;abc def", "qua", ";abc def"},
		{"associativity\nsuppose", "associativity", "\nsuppose"},
		{"abc def", "", ""},
		{"theorems T", "theorems", " T"},
		{"setx", "", ""},
		{"set", "set", ""},
	})
}

func TestCutIdentifier(t *testing.T) {
	runCutCases(t, CutIdentifier, []cutCase{
		{"ABC;abc def", "ABC", ";abc def"},
		{"ABC abc def", "ABC", " abc def"},
		{"123 abc, def", "", ""},
		{"abC_d2(.Ef3 ghi", "abC_d2", "(.Ef3 ghi"},
		{"a'abC_d2_'(.Ef3 ghi", "a'abC_d2_'", "(.Ef3 ghi"},
		{"_x", "", ""},
	})
}

func TestCutNumeral(t *testing.T) {
	runCutCases(t, CutNumeral, []cutCase{
		{"123;abc def", "123", ";abc def"},
		{"456 abc def", "456", " abc def"},
		{"1 abc def", "1", " abc def"},
		{"0 abc def", "0", " abc def"},
		{"0", "0", ""},
		{"012 abc def", "", ""},
		{"012", "", ""},
		{"12ab", "", ""},
		{"ABC abc def", "", ""},
	})
}

func TestReadUntilSpace(t *testing.T) {
	cases := map[string]string{
		"abc def ghi":       "abc",
		"abc__8()\nfaa ghi": "abc__8()",
		"abc__8()faaghi":    "abc__8()faaghi",
		"":                  "",
	}
	for in, want := range cases {
		if got := ReadUntilSpace(in); got != want {
			t.Errorf("ReadUntilSpace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReadIdentifier(t *testing.T) {
	cases := map[string]string{
		"abc def ghi":         "abc",
		"abC_d2Ef3 ghi":       "abC_d2Ef3",
		"abC_d2(.Ef3 ghi":     "abC_d2",
		"a'abC_d2_'(.Ef3 ghi": "a'abC_d2_'",
		" def ghi":            "",
	}
	for in, want := range cases {
		if got := ReadIdentifier(in); got != want {
			t.Errorf("ReadIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}
