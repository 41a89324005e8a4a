// Package sections normalizes the banner comments that split a C header or
// source file into named regions ("includes", "type declarations", ...).
//
// Назначение: make sure every title of the document kind's schema has exactly
// one banner, in schema order, inside the include guard of a header.
// Не делает: parsing of the code between banners, IO, file classification.
//
// The pipeline is RenameEngine -> BoundaryResolver -> SectionInserter ->
// Deduplicator. Banners that already exist are never moved; only missing
// ones are inserted, which keeps a second run a no-op.
package sections
