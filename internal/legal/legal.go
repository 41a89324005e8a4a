// Package legal renders the copyright and license notice every C file opens
// with, checks for it and puts it in place.
//
// A notice is one block comment built from three optional parts (preamble,
// license template, postamble). Each part may use the placeholders
// {project_name}, {authors} and {license_notice}; {authors} expands to one
// "Copyright YEARS NAME" line per contributor, taken from the file history.
package legal

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Built-in license names.
const (
	LicenseGPL3Plus  = "gpl3+"
	LicenseUnlicense = "unlicense"
	LicenseCustom    = "custom"
)

// DefaultCopyright prefixes author lines when Settings.Copyright is empty.
const DefaultCopyright = "Copyright"

// Settings configures the notice.
type Settings struct {
	// License is one of the License* names.
	License string
	// Template is the notice body of a custom license.
	Template string
	// Project replaces {project_name}.
	Project   string
	Preamble  string
	Postamble string
	// Copyright is a case-insensitive regular expression. A file matching
	// it anywhere already carries a notice. When empty the rendered notice
	// itself must be present, literally.
	Copyright string
	// Aliases maps the author name found in history to the name printed.
	Aliases map[string]string

	CommentStart string
	CommentEnd   string
	LineStart    string
}

// DefaultSettings returns a GPLv3+ notice in a /* ... */ comment.
func DefaultSettings() Settings {
	return Settings{
		License:      LicenseGPL3Plus,
		Project:      "Foobar",
		CommentStart: "/*",
		CommentEnd:   " */",
		LineStart:    " *",
	}
}

// Validate reports every problem at once.
func (s *Settings) Validate() error {
	var errs []error
	switch s.License {
	case LicenseGPL3Plus, LicenseUnlicense:
	case LicenseCustom:
		if strings.TrimSpace(s.Template) == "" {
			errs = append(errs, errors.New("custom license needs a template"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown license %q; want %s, %s or %s",
			s.License, LicenseGPL3Plus, LicenseUnlicense, LicenseCustom))
	}
	if s.Copyright != "" {
		if _, err := regexp.Compile(html.UnescapeString(s.Copyright)); err != nil {
			errs = append(errs, fmt.Errorf("copyright pattern: %w", err))
		}
	}
	if strings.TrimSpace(s.CommentStart) == "" || strings.TrimSpace(s.CommentEnd) == "" {
		errs = append(errs, errors.New("comment start and end must not be empty"))
	}
	for from, to := range s.Aliases {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			errs = append(errs, fmt.Errorf("alias %q = %q: both names are required", from, to))
		}
	}
	return errors.Join(errs...)
}

func (s *Settings) template() string {
	switch s.License {
	case LicenseGPL3Plus:
		return gpl3Notice
	case LicenseUnlicense:
		return unlicenseNotice
	}
	return html.UnescapeString(s.Template)
}

func (s *Settings) copyrightPrefix() string {
	if s.Copyright == "" {
		return DefaultCopyright
	}
	return html.UnescapeString(s.Copyright)
}

// Contribution is one change of a file.
type Contribution struct {
	Author string
	Year   int
}

// AuthorLines groups contributions by author, after aliasing, and renders
// one line per author with the distinct years ascending. Lines are sorted.
func (s *Settings) AuthorLines(contribs []Contribution) string {
	years := make(map[string][]int)
	for _, c := range contribs {
		name := c.Author
		if alias, ok := s.Aliases[name]; ok {
			name = alias
		}
		if !slices.Contains(years[name], c.Year) {
			years[name] = append(years[name], c.Year)
		}
	}
	lines := make([]string, 0, len(years))
	prefix := s.copyrightPrefix()
	for name, ys := range years {
		slices.Sort(ys)
		parts := make([]string, len(ys))
		for i, y := range ys {
			parts[i] = strconv.Itoa(y)
		}
		lines = append(lines, prefix+" "+strings.Join(parts, ", ")+" "+name)
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}

// Notice renders the full comment for a file with the given history.
func (s *Settings) Notice(contribs []Contribution) string {
	r := strings.NewReplacer(
		"{project_name}", s.Project,
		"{authors}", s.AuthorLines(contribs),
		"{license_notice}", s.License,
	)
	var lines []string
	for _, part := range []string{s.Preamble, s.template(), s.Postamble} {
		if part == "" {
			continue
		}
		lines = append(lines, splitLines(r.Replace(html.UnescapeString(part)))...)
	}
	body := s.LineStart + strings.Join(lines, "\n"+s.LineStart)
	return s.CommentStart + "\n" + body + "\n" + s.CommentEnd
}

// Has reports whether doc already carries notice, or whatever the copyright
// pattern accepts instead.
func (s *Settings) Has(doc, notice string) bool {
	pattern := regexp.QuoteMeta(notice)
	if s.Copyright != "" {
		pattern = html.UnescapeString(s.Copyright)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	return re.MatchString(doc)
}

// Apply puts notice into doc and reports whether doc changed. A block
// comment that contains the first line of the license template is taken to
// be an older notice and is replaced in place; otherwise notice goes on top,
// followed by a blank line.
func (s *Settings) Apply(doc, notice string) (string, bool) {
	if start, end, ok := s.findNotice(doc); ok {
		out := doc[:start] + notice + doc[end:]
		return out, out != doc
	}
	return notice + "\n\n" + doc, true
}

// HasOutdated reports whether doc has a block comment Apply would replace.
func (s *Settings) HasOutdated(doc string) bool {
	_, _, ok := s.findNotice(doc)
	return ok
}

// marker is the line that identifies an existing notice of this license.
func (s *Settings) marker() string {
	for _, line := range splitLines(strings.ReplaceAll(s.template(), "{project_name}", s.Project)) {
		if strings.TrimSpace(line) != "" && !strings.Contains(line, "{") {
			return s.LineStart + line
		}
	}
	return ""
}

func (s *Settings) findNotice(doc string) (start, end int, ok bool) {
	marker := s.marker()
	if marker == "" {
		return 0, 0, false
	}
	pos := 0
	for {
		open := strings.Index(doc[pos:], s.CommentStart)
		if open < 0 {
			return 0, 0, false
		}
		open += pos
		closeAt := strings.Index(doc[open+len(s.CommentStart):], strings.TrimSpace(s.CommentEnd))
		if closeAt < 0 {
			return 0, 0, false
		}
		closeAt += open + len(s.CommentStart)
		stop := closeAt + len(strings.TrimSpace(s.CommentEnd))
		if strings.Contains(doc[open:stop], marker) {
			return open, stop, true
		}
		pos = stop
	}
}

func splitLines(text string) []string {
	var out []string
	for line := range strings.Lines(text) {
		out = append(out, strings.TrimRight(line, "\r\n"))
	}
	return out
}
