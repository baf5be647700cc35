package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != strings.ToLower(s) {
			t.Fatalf("ParseLevel(%q) = %v", s, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeArticle) {
		t.Error("phase level must skip article events")
	}
	if !LevelDetail.ShouldEmit(ScopeArticle) || LevelDetail.ShouldEmit(ScopeLine) {
		t.Error("detail level must include articles and skip lines")
	}
	if LevelOff.ShouldEmit(ScopeDriver) {
		t.Error("off level must emit nothing")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Output: &buf, Format: FormatText})
	if err != nil {
		t.Fatal(err)
	}
	ctx := WithTracer(context.Background(), tr)

	ctx, root := Start(ctx, ScopeDriver, "lex")
	_, pass := Start(ctx, ScopePass, "split")
	pass.WithExtra("lines", "12").End("")
	_, skipped := Start(ctx, ScopeArticle, "article:a.miz")
	skipped.End("")
	root.End("ok")

	out := buf.String()
	for _, want := range []string{"\u2192 lex", "\u2192 split", "\u2190 split {lines=12}", "\u2190 lex (ok)"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "article:a.miz") {
		t.Errorf("article event leaked at phase level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopePass, "lex", 0)
	span.End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["name"] != "lex" || ev["detail"] != "done" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestNopFromEmptyContext(t *testing.T) {
	if FromContext(context.Background()).Enabled() {
		t.Fatal("missing tracer must be Nop")
	}
	span := Begin(Nop, ScopeDriver, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("nop span must be inert")
	}
	if Nop.Level().ShouldEmit(ScopeDriver) || Nop.Flush() != nil || Nop.Close() != nil {
		t.Fatal("nop tracer must reject every scope and never fail")
	}
}
