package sections

// EnsureSections makes sure every title of schema has a banner. The schema is
// walked from its last title to its first; a missing title is inserted at the
// current boundary, a present one moves the boundary to its first occurrence
// so that earlier titles land above it. Present banners are never moved.
//
// A banner found beyond the initial boundary (after a header's closing guard)
// does not move the boundary, so nothing is ever inserted past that guard.
func EnsureSections(doc string, schema Schema, boundary int) (string, bool) {
	out, inserted := ensureSections(doc, schema, boundary, compileOnDemand{})
	return out, len(inserted) > 0
}

func ensureSections(doc string, schema Schema, boundary int, m matchers) (string, []string) {
	boundary = max(0, min(boundary, len(doc)))
	limit := boundary
	var inserted []string
	for i := len(schema) - 1; i >= 0; i-- {
		title := schema[i]
		if loc := m.banner(title).FindStringIndex(doc); loc != nil {
			if loc[0] <= limit {
				boundary = loc[0]
			}
			continue
		}
		text := insertion(title)
		doc = doc[:boundary] + text + doc[boundary:]
		limit += len(text)
		inserted = append(inserted, title)
	}
	// reported in schema order
	for l, r := 0, len(inserted)-1; l < r; l, r = l+1, r-1 {
		inserted[l], inserted[r] = inserted[r], inserted[l]
	}
	return doc, inserted
}
