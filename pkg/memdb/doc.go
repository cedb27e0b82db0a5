// Package memdb implements the in-memory collection store backing the
// fake REST backend.
//
// A Database maps collection names to ordered record lists. It is built
// from a seed Factory at construction and can be reset to that seed state
// at any time, discarding every mutation since. Collections preserve
// insertion order; identity lookups are linear scans where the first
// matching id wins.
//
// Core types:
//
//   - Database: the full dataset, one instance per backend service
//   - Collection: a named, ordered list of records
//   - Record: an open map of field name to value, keyed by "id"
//
// All operations are guarded by sync.RWMutex at both the database and
// collection level, so a Database is safe to share between goroutines even
// though typical test clients issue requests one at a time.
package memdb
