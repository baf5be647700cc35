package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"mizlex/internal/lexer"
	"mizlex/internal/token"
)

func sampleResult() lexer.Result {
	return lexer.Result{
		Lines: []string{"begin", "x __O_* y ;"},
		Tokens: []token.Token{
			{Kind: token.Reserved, Raw: "begin", Tag: "begin", Line: 5, Col: 1},
			{Kind: token.Ident, Raw: "x", Tag: "x", Line: 6, Col: 1},
			{Kind: token.Symbol, Raw: "*", Tag: "__O_*", Line: 6, Col: 2},
			{Kind: token.Ident, Raw: "y", Tag: "y", Line: 6, Col: 3},
			{Kind: token.Symbol, Raw: ";", Tag: ";", Line: 6, Col: 4},
		},
		Positions: lexer.PositionMap{
			{Index: 0, Line: 5, Col: 1, Len: 5, OutLine: 1, OutCol: 1, OutLen: 5},
			{Index: 1, Line: 6, Col: 1, Len: 1, OutLine: 2, OutCol: 1, OutLen: 1},
			{Index: 2, Line: 6, Col: 2, Len: 1, OutLine: 2, OutCol: 3, OutLen: 5},
			{Index: 3, Line: 6, Col: 3, Len: 1, OutLine: 2, OutCol: 9, OutLen: 1},
			{Index: 4, Line: 6, Col: 4, Len: 1, OutLine: 2, OutCol: 11, OutLen: 1},
		},
	}
}

func TestFormatLexPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatLexPretty(&buf, sampleResult(), TokenOpts{}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "begin\nx __O_* y ;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := FormatLexPretty(&buf, sampleResult(), TokenOpts{Positions: true}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`6:2+1 -> 2:3 Symbol    "*"`)) {
		t.Fatalf("position line missing:\n%s", buf.String())
	}
}

func TestFormatLexJSON(t *testing.T) {
	out := BuildLexOutput("a.miz", 4, sampleResult(), true)
	var buf bytes.Buffer
	if err := FormatLexJSON(&buf, []LexOutput{out}); err != nil {
		t.Fatal(err)
	}

	var decoded []LexOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected one article, got %d", len(decoded))
	}
	got := decoded[0]
	if got.EnvironmentLines != 4 || len(got.Tokens) != 5 || len(got.Positions) != 5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Tokens[2].Tag != "__O_*" || got.Tokens[2].Kind != "Symbol" {
		t.Errorf("unexpected token: %+v", got.Tokens[2])
	}
	if got.Positions[3].OutCol != 9 {
		t.Errorf("unexpected position: %+v", got.Positions[3])
	}

	noPos := BuildLexOutput("a.miz", 4, sampleResult(), false)
	if noPos.Positions != nil {
		t.Error("positions must be omitted unless requested")
	}
}
