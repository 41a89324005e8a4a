// Package trace provides a tracing subsystem for ccheck.
//
// The trace package records which checks ran on which files, how long each
// normalization step took and where the cache hit, to help diagnose slow or
// surprising runs over large trees.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	ccheck sections --trace=- --trace-level=detail src/
//
// # Architecture
//
//   - Nop: zero-overhead no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failures
//   - LevelPhase: run and check boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including individual pipeline steps
//
// # Scopes
//
//   - ScopeDriver: top-level CLI operations (discovery, collision report)
//   - ScopeCheck: one check over all files (sections, guards, ...)
//   - ScopeFile: one file within a check
//   - ScopeStep: rename, insert, dedupe of a single document
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeCheck, "sections", parentID)
//	defer span.End("")
package trace
