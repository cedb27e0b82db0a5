package memdb

import (
	"sync"

	"github.com/memapi/memapi/internal/id"
)

// Collection is a named, ordered, mutable list of records. Order is
// insertion order and is load-bearing for first-match-wins lookup, though
// not part of the public contract.
type Collection struct {
	mu      sync.RWMutex
	name    string
	records []Record
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Len returns the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Records returns a snapshot of the collection in insertion order. Each
// record is cloned so the caller cannot mutate stored state.
func (c *Collection) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Record, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.Clone()
	}
	return out
}

// IndexOf returns the position of the first record whose id matches v
// under normalized equality, or -1 if none does. Records without an id
// field are tolerated and never matched.
func (c *Collection) IndexOf(v any) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(v)
}

func (c *Collection) indexOf(v any) int {
	want := id.Normalize(v)
	if want == nil {
		return -1
	}
	for i, rec := range c.records {
		if got, ok := rec["id"]; ok && id.Equal(got, want) {
			return i
		}
	}
	return -1
}

// FindByID returns a copy of the first record whose id matches v, and
// whether one was found.
func (c *Collection) FindByID(v any) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(v)
	if i < 0 {
		return nil, false
	}
	return c.records[i].Clone(), true
}

// Append adds a record at the end of the collection.
func (c *Collection) Append(rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// ReplaceAt overwrites the record at position i in place.
func (c *Collection) ReplaceAt(i int, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.records) {
		return
	}
	c.records[i] = rec
}

// RemoveAt deletes the record at position i, preserving the order of the
// remaining records.
func (c *Collection) RemoveAt(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.records) {
		return
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
}

// NextID returns one more than the largest numeric id in the collection,
// starting at 1. Non-numeric ids do not participate in generation but
// remain valid for lookup.
func (c *Collection) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]any, len(c.records))
	for i, rec := range c.records {
		ids[i] = rec["id"]
	}
	return id.Next(ids)
}
