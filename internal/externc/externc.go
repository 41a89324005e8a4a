// Package externc checks and inserts the extern "C" linkage-specification
// that lets C headers be included from C++:
//
//	#ifdef __cplusplus
//	extern "C" {
//	#endif
//	...
//	#ifdef __cplusplus
//	}
//	#endif
package externc

import (
	"regexp"

	"ccheck/internal/sections"
)

const (
	// Head opens the linkage block.
	Head = "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n"
	// Tail closes it.
	Tail = "#ifdef __cplusplus\n}\n#endif\n\n"
)

var (
	headRe = regexp.MustCompile(`(?m)^(#ifdef __cplusplus)[\n\r]{0,2}\s*(extern "C" \{)[\n\r]{0,2}(#endif)\r?$`)
	tailRe = regexp.MustCompile(`(?m)^(#ifdef __cplusplus)[\n\r]{0,2}\s*(\})[\n\r]{0,2}(#endif)\r?$`)

	// the head goes right after this banner when the header has one
	declarationsRe = regexp.MustCompile(`(?m)^(/\* -+)[\n\r]{0,2}\s*(\* function declarations)[\n\r]{0,2}\s*(\* -+ \*/)[\n\r]{0,2}`)
)

// Has reports whether doc contains both halves of the linkage block.
func Has(doc string) bool {
	return headRe.MatchString(doc) && tailRe.MatchString(doc)
}

// Insert adds whichever halves of the linkage block are missing and reports
// whether doc changed.
//
// The head goes after the "function declarations" banner when there is one,
// the tail before the closing include guard. Without the banner both halves
// go before the closing guard. Without a closing guard the head goes at the
// very top and the tail at the very bottom.
func Insert(doc string) (string, bool) {
	needHead := !headRe.MatchString(doc)
	needTail := !tailRe.MatchString(doc)
	if !needHead && !needTail {
		return doc, false
	}
	head, tail := "", ""
	if needHead {
		head = Head
	}
	if needTail {
		tail = Tail
	}

	decl := declarationsRe.FindStringIndex(doc)
	if decl != nil && head != "" {
		doc = doc[:decl[1]] + head + doc[decl[1]:]
		head = ""
	}
	if closing, ok := sections.ClosingGuardStart(doc); ok {
		return doc[:closing] + head + tail + doc[closing:], true
	}
	return head + doc + tail, true
}
