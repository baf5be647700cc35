package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"mizlex/internal/driver"
)

func TestApplyEvent(t *testing.T) {
	files := []string{"a.miz", "b.miz"}
	m := NewProgressModel("lex", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.miz", Stage: driver.StageSplit, Status: driver.StatusWorking})
	if m.items[0].status != "splitting" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent = %v, want 0.25", got)
	}

	m.applyEvent(driver.Event{File: "a.miz", Stage: driver.StageLex, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "a.miz", Stage: driver.StageLex, Status: driver.StatusDone})
	if m.items[0].status != "error" || m.failed != 1 {
		t.Fatalf("error status must stick: %+v failed=%d", m.items[0], m.failed)
	}

	m.applyEvent(driver.Event{File: "b.miz", Stage: driver.StageLex, Status: driver.StatusDone})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v, want 1", got)
	}

	m.applyEvent(driver.Event{File: "unknown.miz", Status: driver.StatusDone})

	m.done = true
	view := m.View()
	if !strings.Contains(view, "done: lex (2 articles), 1 failed") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.miz", 20, "short.miz"},
		{"very/long/path/article.miz", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"articles/groups.miz", 8, "artic..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if tt.width > 0 && runewidth.StringWidth(truncate(tt.in, tt.width)) > tt.width {
				t.Errorf("truncate(%q, %d) wider than column", tt.in, tt.width)
			}
		})
	}
}
