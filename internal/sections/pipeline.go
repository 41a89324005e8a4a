package sections

import "slices"

// Result describes one normalization pass over a document.
type Result struct {
	Text       string
	Changed    bool
	Renamed    int      // banners rewritten by rename rules
	Inserted   []string // titles that were missing, in schema order
	Duplicates int      // banners erased by the deduplicator
}

// Normalizer applies a fixed Settings table to documents. It is safe for
// concurrent use.
type Normalizer struct {
	settings Settings
	re       compiled
}

// New validates settings and precompiles the banner patterns.
func New(settings Settings) (*Normalizer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.Header = slices.Clone(settings.Header)
	settings.Source = slices.Clone(settings.Source)
	settings.HeaderRenames = slices.Clone(settings.HeaderRenames)
	settings.SourceRenames = slices.Clone(settings.SourceRenames)
	return &Normalizer{settings: settings, re: compile(&settings)}, nil
}

// Settings returns a copy of the table the normalizer enforces.
func (n *Normalizer) Settings() Settings {
	s := n.settings
	s.Header = slices.Clone(s.Header)
	s.Source = slices.Clone(s.Source)
	s.HeaderRenames = slices.Clone(s.HeaderRenames)
	s.SourceRenames = slices.Clone(s.SourceRenames)
	return s
}

// Normalize runs renames, boundary resolution, insertion of missing sections
// and deduplication. A document for which Changed is false is canonical.
func (n *Normalizer) Normalize(doc string, kind Kind) Result {
	res := Result{}
	doc, res.Renamed = applyRenames(doc, n.settings.Renames(kind), n.re)

	schema := n.settings.Schema(kind)
	boundary := ResolveBoundary(doc, kind)
	doc, res.Inserted = ensureSections(doc, schema, boundary, n.re)

	if n.settings.Deduplicate {
		doc, res.Duplicates = dedupe(doc, schema, n.re)
	}

	res.Text = doc
	res.Changed = res.Renamed > 0 || len(res.Inserted) > 0 || res.Duplicates > 0
	return res
}

// Normalize is a convenience wrapper for a one-off pass with settings.
func Normalize(doc string, kind Kind, settings Settings) (Result, error) {
	n, err := New(settings)
	if err != nil {
		return Result{}, err
	}
	return n.Normalize(doc, kind), nil
}
