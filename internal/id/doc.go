// Package id normalizes record identifiers and generates new ones.
// This is the canonical source for id handling across the codebase.
//
// Record ids are open-typed: a record may carry a numeric or a string id.
// Normalize collapses the representations that address the same record
// ("7", 7.0 from decoded JSON, and 7) into one canonical value so that
// lookup, replacement, and deletion agree on identity regardless of how
// the id arrived (URL segment, request body, or seed data).
package id
