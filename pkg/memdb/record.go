package memdb

import "github.com/memapi/memapi/internal/id"

// Record is a single addressable item within a collection: an open-ended
// mapping from field name to value. No schema is enforced beyond the "id"
// field, which every persisted record carries.
type Record map[string]any

// ID returns the record's id field, nil when absent.
func (r Record) ID() any {
	return r["id"]
}

// SetID stores v, normalized, as the record's id.
func (r Record) SetID(v any) {
	r["id"] = id.Normalize(v)
}

// Clone returns a shallow copy of the record. Field values are shared;
// callers that hand records across an ownership boundary use Clone so that
// map-level mutations do not leak back into the store.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Factory produces the seed snapshot of a database: a mapping from
// collection name to its initial records. It is invoked once at
// construction and again on every Reset, and must return fresh data on
// each call.
type Factory func() map[string][]Record
