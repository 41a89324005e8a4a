// Package guards checks C header include guards.
//
// A header is guarded either by a single "#pragma once" or by the triple
//
//	#ifndef PROJECT_PATH_TO_FILE_H_
//	#define PROJECT_PATH_TO_FILE_H_
//	...
//	#endif  // PROJECT_PATH_TO_FILE_H_
//
// whose name is derived from the project name and the header's path.
// Because '.', '/', '\' and '-' all fold to '_', two distinct headers can map
// to the same guard; Collisions gathers guards across a run to report those.
package guards
