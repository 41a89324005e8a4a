package sections

// ResolveBoundary returns the offset the last schema section has to precede:
// the closing guard of a header, otherwise the end of the document.
func ResolveBoundary(doc string, kind Kind) int {
	if kind == KindHeader {
		if start, ok := ClosingGuardStart(doc); ok {
			return start
		}
	}
	return len(doc)
}
