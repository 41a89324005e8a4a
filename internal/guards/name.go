package guards

import "strings"

var guardFolder = strings.NewReplacer(".", "_", "/", "_", "\\", "_", "-", "_")

// dirGuard upper-cases s, folds separators to '_' and appends a trailing '_'.
func dirGuard(s string) string {
	return guardFolder.Replace(strings.ToUpper(s)) + "_"
}

// GuardName builds the expected guard of a header. project is the project
// name (usually the root directory's base name); rel holds the header's path
// components relative to the project root. The leading component of a nested
// path is the project's source directory and is not part of the guard.
//
//	GuardName("mylib", []string{"src", "util", "list.h"}) == "MYLIB_UTIL_LIST_H_"
func GuardName(project string, rel []string) string {
	if len(rel) > 1 {
		rel = rel[1:]
	}
	return dirGuard(project) + dirGuard(strings.Join(rel, "_"))
}
