package guards

import (
	"fmt"
	"regexp"
	"strings"
)

// Problem classifies the outcome of Check.
type Problem uint8

const (
	OK Problem = iota
	MultiplePragma
	MultipleIfndef
	MultipleDefine
	MultipleEndif
	PragmaAndGuard
	Partial
	Missing
)

func (p Problem) String() string {
	switch p {
	case OK:
		return "ok"
	case MultiplePragma:
		return "multiple #pragma once"
	case MultipleIfndef:
		return "multiple ifndef header guards"
	case MultipleDefine:
		return "multiple define header guards"
	case MultipleEndif:
		return "multiple endif header guards"
	case PragmaAndGuard:
		return "both #pragma once and header guards"
	case Partial:
		return "only part of a header guard"
	case Missing:
		return "neither header guard nor #pragma once"
	}
	return fmt.Sprintf("Problem(%d)", uint8(p))
}

// Finding is the result of checking one header. Offset is the byte offset of
// the offending line; zero for file-level problems.
type Finding struct {
	Problem Problem
	Guard   string
	Offset  int
}

func (f Finding) OK() bool { return f.Problem == OK }

var pragmaOnce = regexp.MustCompile(`^#pragma once$`)

type guardLines struct {
	ifndef *regexp.Regexp
	define *regexp.Regexp
	endif  *regexp.Regexp
}

func compileGuard(guard string) guardLines {
	q := regexp.QuoteMeta(guard)
	return guardLines{
		ifndef: regexp.MustCompile(`^#ifndef ` + q + `$`),
		define: regexp.MustCompile(`^#define ` + q + `$`),
		endif:  regexp.MustCompile(`^#endif +// ` + q + `$`),
	}
}

// Check scans doc line by line for guard directives. The directives must
// start at column zero with no trailing whitespace. The first repeated
// directive stops the scan.
func Check(doc, guard string) Finding {
	re := compileGuard(guard)
	var pragma, ifndef, define, endif bool

	off := 0
	for line := range strings.Lines(doc) {
		start := off
		off += len(line)
		line = strings.TrimRight(line, "\r\n")

		switch {
		case pragmaOnce.MatchString(line):
			if pragma {
				return Finding{Problem: MultiplePragma, Guard: guard, Offset: start}
			}
			pragma = true
		case re.ifndef.MatchString(line):
			if ifndef {
				return Finding{Problem: MultipleIfndef, Guard: guard, Offset: start}
			}
			ifndef = true
		case re.define.MatchString(line):
			if define {
				return Finding{Problem: MultipleDefine, Guard: guard, Offset: start}
			}
			define = true
		case re.endif.MatchString(line):
			if endif {
				return Finding{Problem: MultipleEndif, Guard: guard, Offset: start}
			}
			endif = true
		}
	}

	switch {
	case pragma && (ifndef || define || endif):
		return Finding{Problem: PragmaAndGuard, Guard: guard}
	case pragma, ifndef && define && endif:
		return Finding{Problem: OK, Guard: guard}
	case ifndef || define || endif:
		return Finding{Problem: Partial, Guard: guard}
	}
	return Finding{Problem: Missing, Guard: guard}
}
