package store

import (
	"sync"

	"github.com/google/uuid"
)

// Document is a schemaless record held by a collection. Nested
// sub-documents are map[string]any; computed values live under the
// reserved "$resolved" key.
type Document = map[string]any

// IDField is the document identity field, assigned on insert when absent.
const IDField = "_id"

// Store owns one collection per concrete type.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*Collection
}

// New creates an empty store.
func New() *Store {
	return &Store{collections: make(map[string]*Collection)}
}

// Collection returns the collection for a type name, creating it on
// first use.
func (s *Store) Collection(name string) *Collection {
	s.mu.RLock()
	c, ok := s.collections[name]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.collections[name]; ok {
		return c
	}
	c = &Collection{name: name, indexes: make(map[string]*pathIndex)}
	s.collections[name] = c
	return c
}

// View builds a merged read-only view over the named collections.
func (s *Store) View(names []string) *View {
	cols := make([]*Collection, len(names))
	for i, name := range names {
		cols[i] = s.Collection(name)
	}
	return NewView(cols...)
}

// Collection is the per-type document partition.
type Collection struct {
	name string

	mu      sync.RWMutex
	docs    []Document
	indexes map[string]*pathIndex
}

// Name returns the collection's type name.
func (c *Collection) Name() string { return c.name }

// Len returns the number of stored documents.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Insert stores a document and returns its id, assigning a fresh one
// when the document carries none. Existing indexes pick the row up
// immediately.
func (c *Collection) Insert(doc Document) string {
	id, ok := doc[IDField].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		doc[IDField] = id
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	row := uint32(len(c.docs))
	c.docs = append(c.docs, doc)
	for path, ix := range c.indexes {
		if v, present := valueAt(doc, path); present {
			ix.add(row, v)
		}
	}
	return id
}

// EnsureIndex builds an inverted index over a dotted path. Re-requesting
// an existing index is a no-op; at most one build happens per path per
// process lifetime.
func (c *Collection) EnsureIndex(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.indexes[path]; ok {
		return nil
	}
	ix := newPathIndex()
	for row, doc := range c.docs {
		if v, present := valueAt(doc, path); present {
			ix.add(uint32(row), v)
		}
	}
	c.indexes[path] = ix
	return nil
}

// HasIndex reports whether a path is indexed.
func (c *Collection) HasIndex(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.indexes[path]
	return ok
}

// Chain starts a query chain over this collection.
func (c *Collection) Chain() *Chain {
	return &Chain{src: []*Collection{c}}
}
