package memdb

import (
	"sort"
	"sync"

	"github.com/memapi/memapi/internal/id"
)

// Database is the full in-memory dataset: a mapping from collection name
// to Collection, owned exclusively by one backend service instance.
type Database struct {
	mu      sync.RWMutex
	factory Factory
	colls   map[string]*Collection
}

// New builds a Database from the seed factory. A nil factory yields an
// empty database.
func New(factory Factory) *Database {
	db := &Database{factory: factory}
	db.colls = db.seed()
	return db
}

func (db *Database) seed() map[string]*Collection {
	colls := make(map[string]*Collection)
	if db.factory == nil {
		return colls
	}
	for name, recs := range db.factory() {
		c := &Collection{name: name, records: make([]Record, 0, len(recs))}
		for _, rec := range recs {
			clone := rec.Clone()
			if v, ok := clone["id"]; ok {
				clone["id"] = id.Normalize(v)
			}
			c.records = append(c.records, clone)
		}
		colls[name] = c
	}
	return colls
}

// Lookup returns the collection for name. Unknown names yield a fresh
// empty collection, registered so that later writes through it persist;
// Lookup never fails.
func (db *Database) Lookup(name string) *Collection {
	db.mu.Lock()
	defer db.mu.Unlock()

	if c, ok := db.colls[name]; ok {
		return c
	}
	c := &Collection{name: name}
	db.colls[name] = c
	return c
}

// Names returns all collection names in sorted order for deterministic
// output.
func (db *Database) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.colls))
	for name := range db.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset replaces the entire database with a freshly invoked seed snapshot,
// discarding all mutations made since construction or the previous reset.
func (db *Database) Reset() {
	fresh := db.seed()

	db.mu.Lock()
	defer db.mu.Unlock()
	db.colls = fresh
}
