package sections

import (
	"regexp"
	"strings"
)

const (
	bannerRule   = "--------------------------------------------------------------------------"
	bannerPrefix = `/\* -+`
	bannerSuffix = ` \* -+ \*/`
)

// Render returns the canonical three-line banner for title, without any
// surrounding line breaks.
func Render(title string) string {
	var sb strings.Builder
	sb.Grow(2*len(bannerRule) + len(title) + 16)
	sb.WriteString("/* ")
	sb.WriteString(bannerRule)
	sb.WriteString("\n * ")
	sb.WriteString(title)
	sb.WriteString("\n * ")
	sb.WriteString(bannerRule)
	sb.WriteString(" */")
	return sb.String()
}

// insertion is the text spliced in for a missing section: a leading line
// break, the banner, and one blank line after it.
func insertion(title string) string {
	return "\n" + Render(title) + "\n\n"
}

// Matcher returns a multi-line pattern matching a banner for exactly title.
// Each line break between prefix, title line and suffix may be one or two
// characters, so CRLF and LF documents both match. In a document with mixed
// line endings the match includes the \r ending the suffix line.
func Matcher(title string) *regexp.Regexp {
	return regexp.MustCompile(bannerExpr(title, ""))
}

// trailingMatcher also swallows the line breaks following the banner; the
// deduplicator erases these together with the banner.
func trailingMatcher(title string) *regexp.Regexp {
	return regexp.MustCompile(bannerExpr(title, `[\n\r]*`))
}

func bannerExpr(title, tail string) string {
	return `(?m)^` + bannerPrefix + `[\n\r]{1,2}\s\* ` + regexp.QuoteMeta(title) +
		`[\n\r]{1,2}` + bannerSuffix + tail + `\r?$`
}

// Banner is a located banner span [Start, End) in a document.
type Banner struct {
	Title string
	Start int
	End   int
}

// Find returns every banner for title in document order.
func Find(doc, title string) []Banner {
	return findWith(Matcher(title), doc, title)
}

func findWith(re *regexp.Regexp, doc, title string) []Banner {
	locs := re.FindAllStringIndex(doc, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Banner, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Banner{Title: title, Start: loc[0], End: loc[1]})
	}
	return out
}
