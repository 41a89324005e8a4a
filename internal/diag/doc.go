// Package diag defines the findings model shared by every check.
//
// # Purpose
//
//   - Provide deterministic data structures for what a check found in a file:
//     a missing section banner, a partial include guard, a badly named folder.
//   - Offer light-weight utilities (Reporter, Bag) so checks can emit findings
//     without knowing how they are stored or printed.
//
// # Scope
//
// Package diag does no formatting and no IO. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short and actionable.
//   - Primary – source.Span of the finding; file-level findings use an
//     empty span at offset 0.
//   - Notes – optional secondary spans, e.g. the other file claiming the same
//     include guard.
//
// In fix mode a repaired problem is still reported, with SevInfo, so the run
// summary lists what was rewritten.
package diag
