package vct

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"mizlex/internal/diag"
	"mizlex/internal/symbol"
)

func TestDecodeFile(t *testing.T) {
	voc, err := DecodeFile(filepath.Join("testdata", "mini.vct"))
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if len(voc.Sections) != 3 {
		t.Fatalf("got %d articles, want 3", len(voc.Sections))
	}
	if voc.SymbolCount() != 9 {
		t.Fatalf("got %d symbols, want 9", voc.SymbolCount())
	}

	dot := voc.Sections[2].Symbols[0]
	if dot.Text != "." || dot.Category != symbol.Functor || !dot.HasPriority || dot.Priority != 100 || dot.File != "AFVECT0" {
		t.Fatalf("unexpected entry for '.': %+v", dot)
	}
	if lin := voc.Sections[0].Symbols[0]; lin.Text != "LIN" || lin.Category != symbol.Predicate {
		t.Fatalf("unexpected entry for LIN: %+v", lin)
	}
}

func TestDecodeFeedsTable(t *testing.T) {
	voc, err := DecodeFile(filepath.Join("testdata", "mini.vct"))
	if err != nil {
		t.Fatal(err)
	}
	tbl := symbol.NewTable()
	if err := tbl.Load([]symbol.Source{voc}, []string{"AFF_1", "AFF_2"}); err != nil {
		t.Fatal(err)
	}
	if want := 1 + 2 + len(symbol.SpecialSymbols()); tbl.Len() != want {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		msg   string
	}{
		{"symbol before header", "RLIN\n", 1, "before first article"},
		{"unknown category", "#A\nXfoo\n", 2, "unknown symbol category"},
		{"priority on mode", "#A\nMfoo 3\n", 2, "non-functor"},
		{"bad priority", "#A\nOfoo x\n", 2, "bad priority"},
		{"empty header", "#\n", 1, "empty article name"},
		{"missing text", "#A\nO\n", 2, "missing symbol text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), "x.vct")
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %v", err)
			}
			if se.Line != tt.line || !strings.Contains(se.Msg, tt.msg) {
				t.Fatalf("got line %d msg %q, want line %d containing %q", se.Line, se.Msg, tt.line, tt.msg)
			}
			if se.DiagCode() != diag.VctSyntax {
				t.Fatalf("DiagCode = %v", se.DiagCode())
			}
		})
	}
}

func TestIsCountLine(t *testing.T) {
	if !isCountLine("G0 K0 L0 M0 O0 R1 U0 V0") {
		t.Error("expected count line")
	}
	for _, s := range []string{"O. 100", "RLIN", "Ofoo 3", "G0"} {
		if isCountLine(s) {
			t.Errorf("%q misread as count line", s)
		}
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "none.vct")); err == nil {
		t.Fatal("expected error")
	}
}
