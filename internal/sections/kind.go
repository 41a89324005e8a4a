package sections

import "fmt"

// Kind selects which schema and rename table apply to a document.
type Kind uint8

const (
	// KindSource is a C translation unit (.c).
	KindSource Kind = iota
	// KindHeader is a C header (.h); it is the only kind that consults guard anchors.
	KindHeader
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "source":
		return KindSource, nil
	case "header":
		return KindHeader, nil
	default:
		return KindSource, fmt.Errorf("invalid document kind: %q (expected: header|source)", s)
	}
}
