package sections

// Dedupe keeps the first banner of every title and erases the later ones,
// together with the line breaks that trail them. Text under an erased banner
// stays where it was.
func Dedupe(doc string, titles []string) (string, bool) {
	out, n := dedupe(doc, titles, compileOnDemand{})
	return out, n > 0
}

func dedupe(doc string, titles []string, m matchers) (string, int) {
	removed := 0
	for _, title := range titles {
		re := m.trailing(title)
		first := re.FindStringIndex(doc)
		if first == nil {
			continue
		}
		rest := doc[first[1]:]
		dups := re.FindAllStringIndex(rest, -1)
		if len(dups) == 0 {
			continue
		}
		removed += len(dups)
		doc = doc[:first[1]] + re.ReplaceAllLiteralString(rest, "")
	}
	return doc, removed
}
