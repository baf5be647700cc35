package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		in   string
		want string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3+build.7", "1.2.3+build.7"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			Version = tt.in
			if got := Colored(); got != tt.want {
				t.Errorf("Colored() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Error("expected ANSI sequences when color is enabled")
	}
}
