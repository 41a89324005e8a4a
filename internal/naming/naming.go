// Package naming enforces the project's file and folder naming convention:
// file names are lower snake case (with a few well-known exceptions) and
// folder names are lower case words joined by '_' or '-'.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	allowedFile   = regexp.MustCompile(`^([a-z\d_.]+|CMakeLists.txt|[A-Z_]+.md|LICENSE)$`)
	allowedFolder = regexp.MustCompile(`^[a-z\d_\-]+$`)

	camelBoundary = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

type Kind uint8

const (
	BadFolder Kind = iota + 1
	BadFile
)

func (k Kind) String() string {
	switch k {
	case BadFolder:
		return "folder"
	case BadFile:
		return "file"
	}
	return "unknown"
}

// Finding names one component of a path that breaks the convention.
type Finding struct {
	Kind       Kind
	Name       string
	Suggestion string
}

// Check validates rel, a slash or OS separated path relative to the project
// root. Every directory component is checked against the folder rule and
// the last component against the file rule.
func Check(rel string) []Finding {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(rel)), "/")
	if len(parts) == 0 {
		return nil
	}
	var out []Finding
	for _, dir := range parts[:len(parts)-1] {
		if dir == "." || dir == ".." || allowedFolder.MatchString(dir) {
			continue
		}
		out = append(out, Finding{Kind: BadFolder, Name: dir, Suggestion: SuggestFolder(dir)})
	}
	if name := parts[len(parts)-1]; !allowedFile.MatchString(name) {
		out = append(out, Finding{Kind: BadFile, Name: name, Suggestion: SuggestFile(name)})
	}
	return out
}

// SuggestFile proposes a snake case file name: "MyFile.h" becomes "my_file.h".
func SuggestFile(name string) string {
	s := camelBoundary.ReplaceAllString(name, "${1}_${2}")
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return toLower(s)
}

// SuggestFolder proposes a folder name: "MyFolder" and "my_folder" both
// become "my-folder".
func SuggestFolder(name string) string {
	s := camelBoundary.ReplaceAllString(name, "${1}-${2}")
	s = strings.NewReplacer("_", "-", " ", "-", ".", "-").Replace(s)
	return toLower(s)
}

// Casers are stateful, so each call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}
