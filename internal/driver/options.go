package driver

import (
	"strings"

	"ccheck/internal/config"
	"ccheck/internal/legal"
	"ccheck/internal/observ"
)

// Check selects which checks a run performs.
type Check uint8

const (
	// CheckSections enforces the section banner schema.
	CheckSections Check = 1 << iota
	// CheckGuards enforces include guards and reports guard collisions.
	CheckGuards
	// CheckExternC enforces the extern "C" linkage block in headers.
	CheckExternC
	// CheckNaming enforces file and folder naming.
	CheckNaming
	// CheckLegal enforces the copyright and license notice.
	CheckLegal

	CheckAll = CheckSections | CheckGuards | CheckExternC | CheckNaming | CheckLegal
)

// DefaultChecks is CheckAll without the notice check unless cfg configures
// a notice.
func DefaultChecks(cfg *config.Config) Check {
	if cfg.HasLegal {
		return CheckAll
	}
	return CheckAll &^ CheckLegal
}

// Has reports whether c includes x.
func (c Check) Has(x Check) bool { return c&x != 0 }

func (c Check) String() string {
	names := make([]string, 0, 5)
	for _, x := range []struct {
		check Check
		name  string
	}{
		{CheckSections, "sections"},
		{CheckGuards, "guards"},
		{CheckExternC, "externc"},
		{CheckNaming, "naming"},
		{CheckLegal, "legal"},
	} {
		if c.Has(x.check) {
			names = append(names, x.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// Options configures a run.
type Options struct {
	// Checks defaults to DefaultChecks.
	Checks Check
	// Fix rewrites files that fail a fixable check (sections, externc, legal).
	Fix bool
	// Jobs bounds the number of files processed at once; <= 0 means GOMAXPROCS.
	Jobs           int
	MaxDiagnostics int
	// Cache is consulted by the sections check; nil disables it.
	Cache    *Cache
	// History feeds the notice check; nil opens the git repository
	// enclosing the project root.
	History  legal.History
	Progress ProgressSink
	Timer    *observ.Timer
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}
