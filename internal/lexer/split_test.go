package lexer

import (
	"errors"
	"reflect"
	"testing"

	"mizlex/internal/diag"
)

var article = []string{
	":: Rings, a small excerpt",
	"environ",
	"",
	" vocabularies RLVECT_1, ALGSTR_0;",
	" notations STRUCT_0; :: begin is not here",
	"",
	"begin :: ring axioms",
	"",
	"theorem",
	"  for x being Element of R holds x = x;",
}

func TestSeparateEnvironmentAndTextProper(t *testing.T) {
	doc, err := SeparateEnvironmentAndTextProper(article)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Environment) != 6 || len(doc.TextProper) != 4 {
		t.Fatalf("got %d/%d lines, want 6/4", len(doc.Environment), len(doc.TextProper))
	}
	if doc.TextProper[0] != "begin :: ring axioms" {
		t.Fatalf("text proper must start with the marker line, got %q", doc.TextProper[0])
	}
	if !reflect.DeepEqual(doc.Lines(), article) {
		t.Fatal("regions do not reassemble the input")
	}
}

func TestSeparateIgnoresLookalikes(t *testing.T) {
	lines := []string{
		"environ",
		":: begin",
		"beginning",
		"  begin",
		"theorem",
	}
	doc, err := SeparateEnvironmentAndTextProper(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Environment) != 3 {
		t.Fatalf("marker found at line %d, want 4", len(doc.Environment)+1)
	}
}

func TestSeparateMissingBegin(t *testing.T) {
	_, err := SeparateEnvironmentAndTextProper([]string{"environ", "theorem"})
	var se *SplitError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SplitError, got %v", err)
	}
	if se.Lines != 2 || se.DiagCode() != diag.DocMissingBegin {
		t.Fatalf("unexpected error details: %+v", se)
	}
}
