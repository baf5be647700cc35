package lexer

import "testing"

func TestIsWordBoundary(t *testing.T) {
	tests := []struct {
		a, b rune
		want bool
	}{
		{'a', 'b', false},
		{'_', 'b', true},
		{'a', '0', false},
		{'7', 'Z', false},
		{'\'', 'b', true},
		{'a', '\'', true},
		{'a', '(', true},
		{')', 'b', true},
		{')', '(', true},
		{'a', ' ', true},
		{'a', '_', true},
	}
	for _, tt := range tests {
		if got := IsWordBoundary(tt.a, tt.b); got != tt.want {
			t.Errorf("IsWordBoundary(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBoundaryAtEnds(t *testing.T) {
	if !boundaryAt("abc", 3) {
		t.Error("end of input must be a boundary")
	}
	if boundaryAt("abc", 2) {
		t.Error("inside a word must not be a boundary")
	}
}
