package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug", "DEBUG"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", s, err)
		}
		if !strings.EqualFold(lvl.String(), s) {
			t.Errorf("ParseLevel(%q).String() = %q", s, lvl.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		kind  Kind
		scope Scope
		want  bool
	}{
		{LevelOff, KindError, ScopeDriver, false},
		{LevelError, KindSpanBegin, ScopeDriver, false},
		{LevelError, KindError, ScopeFile, true},
		{LevelPhase, KindSpanBegin, ScopeCheck, true},
		{LevelPhase, KindSpanBegin, ScopeFile, false},
		{LevelDetail, KindPoint, ScopeFile, true},
		{LevelDetail, KindPoint, ScopeStep, false},
		{LevelDebug, KindPoint, ScopeStep, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.kind, tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s, %s) = %v, want %v", tt.level, tt.kind, tt.scope, got, tt.want)
		}
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatal("off tracer must be disabled")
	}
	span := Begin(tr, ScopeDriver, "run", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("nop span must be inert")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ctx := WithTracer(context.Background(), tr)

	ctx, check := Start(ctx, ScopeCheck, "sections")
	_, file := Start(ctx, ScopeFile, "file:a.h")
	file.WithExtra("changed", "true").WithExtra("cached", "false")
	file.End("")
	Point(tr, ScopeStep, "rename", "", check.ID())
	Error(tr, ScopeFile, "write", errors.New("disk full"), check.ID())
	check.End("1 file")

	out := buf.String()
	for _, want := range []string{
		"\u2192 sections\n",
		"  \u2192 file:a.h\n",
		"  \u2190 file:a.h {cached=false, changed=true}\n",
		"  ! write (disk full)\n",
		"\u2190 sections (1 file)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rename") {
		t.Errorf("step point must be filtered at detail level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	span := Begin(tr, ScopeDriver, "discover", 0)
	span.End("3 files")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev struct {
		Kind   string `json:"kind"`
		Scope  string `json:"scope"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "driver" || ev.Name != "discover" || ev.Detail != "3 files" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestFromContextDefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop tracer")
	}
	if ParentID(context.Background()) != 0 {
		t.Fatal("expected empty span context")
	}
}

func TestStartNestsSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelDebug, FormatText))
	ctx, outer := Start(ctx, ScopeDriver, "run")
	inner, span := Start(ctx, ScopeFile, "file:a.c")
	if ParentID(ctx) != outer.ID() || ParentID(inner) != span.ID() {
		t.Fatalf("parent ids: %d/%d, %d/%d", ParentID(ctx), outer.ID(), ParentID(inner), span.ID())
	}
	span.End("")
	outer.End("")
}
