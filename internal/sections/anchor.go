package sections

import "regexp"

var (
	openingGuard = regexp.MustCompile(`#ifndef\s[A-Z\d_]+_H_[\n\r]{1,2}#define\s[A-Z\d_]+_H_[\n\r]{1,2}`)
	closingGuard = regexp.MustCompile(`#endif\s+//\s[A-Z\d_]+_H_`)
)

// OpeningGuardEnd returns the offset right after the first
// "#ifndef X_H_" / "#define X_H_" pair, including up to two line-break
// characters following the #define, so one blank line after it is consumed
// as well. An #ifndef without its #define (or the reverse) is not an anchor.
func OpeningGuardEnd(doc string) (int, bool) {
	loc := openingGuard.FindStringIndex(doc)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// ClosingGuardStart returns the offset of the first "#endif // X_H_" line.
func ClosingGuardStart(doc string) (int, bool) {
	loc := closingGuard.FindStringIndex(doc)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}
