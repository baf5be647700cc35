package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"mizlex/internal/diag"
	"mizlex/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.miz", []byte("begin\nx % y;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 9}, "unrecognized character '%'"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", output.Count)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1001" {
		t.Errorf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	loc := d.Location
	if loc.File != "test.miz" || loc.StartLine != 2 || loc.StartCol != 3 || loc.EndCol != 4 {
		t.Errorf("unexpected location: %+v", loc)
	}
}

// TestJSONMax проверяет обрезку вывода
func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.miz", []byte("abc\n"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: i, End: i + 1}, "x"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", out.Count)
	}
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Error("positions must be omitted unless requested")
	}
}

func TestJSONNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.miz", []byte("abc\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.DocMissingBegin, source.Span{File: fileID}, "no begin").
		WithNote(source.Span{File: fileID, Start: 3, End: 3}, "end of file"))

	without := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(without.Diagnostics[0].Notes) != 0 {
		t.Error("notes must be omitted unless requested")
	}
	with := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true})
	if len(with.Diagnostics[0].Notes) != 1 || with.Diagnostics[0].Notes[0].Message != "end of file" {
		t.Errorf("unexpected notes: %+v", with.Diagnostics[0].Notes)
	}
}
