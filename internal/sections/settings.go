package sections

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

// Schema is the ordered list of titles a document kind must carry.
type Schema []string

// RenameRule migrates banners titled From to the canonical banner of To.
type RenameRule struct {
	From string
	To   string
}

// Settings is the process-wide normalization table. It is read-only once a
// Normalizer has been built from it.
type Settings struct {
	Header        Schema
	Source        Schema
	HeaderRenames []RenameRule
	SourceRenames []RenameRule
	Deduplicate   bool
}

// DefaultSettings returns the stock schemas used when no configuration
// overrides them.
func DefaultSettings() Settings {
	return Settings{
		Header: Schema{
			"includes",
			"macros/defines",
			"type declarations",
			"function declarations",
		},
		Source: Schema{
			"includes",
			"macros/defines",
			"type declarations",
			"global variables",
			"local function declarations",
			"function implementations",
			"local function implementations",
		},
		SourceRenames: []RenameRule{
			{From: "function declarations", To: "local function declarations"},
		},
		Deduplicate: true,
	}
}

// Schema returns the ordered titles for kind.
func (s *Settings) Schema(kind Kind) Schema {
	if kind == KindHeader {
		return s.Header
	}
	return s.Source
}

// Renames returns the rename table for kind.
func (s *Settings) Renames(kind Kind) []RenameRule {
	if kind == KindHeader {
		return s.HeaderRenames
	}
	return s.SourceRenames
}

// Validate rejects schemas with blank or repeated titles and rename rules
// that would keep firing: a rule that does nothing, one whose source title
// is itself required by the schema (it would be inserted and renamed again
// on every run), and chains where one rule's target is another's source.
func (s *Settings) Validate() error {
	var errs []error
	for _, kind := range []Kind{KindHeader, KindSource} {
		seen := make(map[string]struct{}, len(s.Schema(kind)))
		for _, title := range s.Schema(kind) {
			if err := checkTitle(title); err != nil {
				errs = append(errs, fmt.Errorf("%s schema: %w", kind, err))
				continue
			}
			if _, dup := seen[title]; dup {
				errs = append(errs, fmt.Errorf("%s schema: duplicate title %q", kind, title))
			}
			seen[title] = struct{}{}
		}
		sources := make(map[string]struct{}, len(s.Renames(kind)))
		for _, rule := range s.Renames(kind) {
			sources[rule.From] = struct{}{}
		}
		for _, rule := range s.Renames(kind) {
			if err := checkTitle(rule.From); err != nil {
				errs = append(errs, fmt.Errorf("%s rename: %w", kind, err))
				continue
			}
			if err := checkTitle(rule.To); err != nil {
				errs = append(errs, fmt.Errorf("%s rename: %w", kind, err))
				continue
			}
			if rule.From == rule.To {
				errs = append(errs, fmt.Errorf("%s rename: %q renames to itself", kind, rule.From))
				continue
			}
			if _, required := seen[rule.From]; required {
				errs = append(errs, fmt.Errorf("%s rename: %q is a schema title", kind, rule.From))
			}
			if _, chained := sources[rule.To]; chained {
				errs = append(errs, fmt.Errorf("%s rename: %q -> %q feeds another rename", kind, rule.From, rule.To))
			}
		}
	}
	return errors.Join(errs...)
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("empty title")
	}
	if strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("title %q spans several lines", title)
	}
	return nil
}

// Fingerprint identifies the settings for cache keys: two runs with equal
// fingerprints normalize identical input identically.
func (s *Settings) Fingerprint() [32]byte {
	h := sha256.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = h.Write([]byte(p))
			_, _ = h.Write([]byte{0})
		}
	}
	write("banner/v1", bannerExpr("", ""))
	for _, kind := range []Kind{KindHeader, KindSource} {
		write("schema", kind.String())
		write(s.Schema(kind)...)
		for _, rule := range s.Renames(kind) {
			write("rename", rule.From, rule.To)
		}
	}
	if s.Deduplicate {
		write("dedupe")
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
