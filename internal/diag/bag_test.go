package diag

import (
	"errors"
	"strings"
	"testing"

	"mizlex/internal/source"
)

type codedErr struct{}

func (codedErr) Error() string  { return "unrecognized character '%'" }
func (codedErr) DiagCode() Code { return LexUnknownChar }

type infoErr struct{}

func (infoErr) Error() string  { return "vocabulary note" }
func (infoErr) DiagCode() Code { return VctInfo }

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(NewError(LexUnknownChar, source.Span{Start: uint32(i)}, "x"))
	}
	if bag.Len() != 2 {
		t.Fatalf("expected bag to stop at its limit, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(DocMissingBegin, source.Span{Start: 10, End: 11}, "b"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 2, End: 3}, "a"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 2, End: 3}, "a"))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Code != LexUnknownChar || items[1].Code != DocMissingBegin {
		t.Fatalf("unexpected order: %v, %v", items[0].Code, items[1].Code)
	}
}

func TestFromErrorUsesCode(t *testing.T) {
	d := FromError(codedErr{}, source.Span{})
	if d.Code != LexUnknownChar || d.Severity != SevError {
		t.Fatalf("got %v/%v", d.Code, d.Severity)
	}
	d = FromError(errors.New("plain"), source.Span{})
	if d.Code != UnknownCode || d.Severity != SevError {
		t.Fatalf("plain error must map to UnknownCode/ERROR, got %v/%v", d.Code, d.Severity)
	}
	d = FromError(infoErr{}, source.Span{})
	if d.Code != VctInfo || d.Severity != SevInfo {
		t.Fatalf("info code must keep SevInfo, got %v/%v", d.Code, d.Severity)
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{LexInfo, SevInfo},
		{DocInfo, SevInfo},
		{VctInfo, SevInfo},
		{LexUnknownChar, SevError},
		{LexUnknownSymbolSource, SevError},
		{DocMissingBegin, SevError},
		{VctSyntax, SevError},
		{IOLoadFileError, SevError},
		{UnknownCode, SevError},
	}
	for _, tt := range tests {
		t.Run(tt.code.ID(), func(t *testing.T) {
			if got := SeverityFor(tt.code); got != tt.want {
				t.Errorf("SeverityFor(%s) = %v, want %v", tt.code.ID(), got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	for sev, want := range map[Severity]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR", Severity(9): "UNKNOWN"} {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}

func TestBagErr(t *testing.T) {
	bag := NewBag(4)
	if bag.Err() != nil {
		t.Fatal("empty bag must not produce an error")
	}
	ReportError(BagReporter{Bag: bag}, DocMissingBegin, source.Span{}, "no begin").Emit()
	err := bag.Err()
	if err == nil || !strings.Contains(err.Error(), "DOC1101") {
		t.Fatalf("Err() = %v", err)
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:  "LEX1001",
		DocMissingBegin: "DOC1101",
		VctSyntax:       "VCT1201",
		IOLoadFileError: "IO4001",
		UnknownCode:     "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
