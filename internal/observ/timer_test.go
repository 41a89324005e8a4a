package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	if got := tm.Report(); len(got.Phases) != 0 || got.TotalMS != 0 {
		t.Fatalf("empty timer report = %+v", got)
	}

	discover := tm.Begin("discover")
	tm.End(discover, "12 files")
	check := tm.Begin("sections")
	tm.End(check, "")
	tm.End(99, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "discover" || report.Phases[0].Note != "12 files" {
		t.Errorf("unexpected first phase: %+v", report.Phases[0])
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:\n", "discover", "// 12 files", "sections", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary lacks %q:\n%s", want, summary)
		}
	}
}
