package store

import (
	"context"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/docsift/docsift/filter"
)

// Chain is the store's query builder: Find and CompoundSort accumulate,
// Data executes and materializes. A chain over several collections (from
// a View) branches execution per collection and merges result sets.
type Chain struct {
	src       []*Collection
	filter    filter.Compiled
	firstOnly bool
	sortKeys  []filter.SortKey
}

// Find sets the compiled filter. firstOnly is an execution hint: it
// limits what is materialized, never what matches.
func (ch *Chain) Find(f filter.Compiled, firstOnly bool) *Chain {
	ch.filter = f
	ch.firstOnly = firstOnly
	return ch
}

// CompoundSort sets the compiled sort keys, primary key first.
func (ch *Chain) CompoundSort(keys []filter.SortKey) *Chain {
	ch.sortKeys = keys
	return ch
}

// Data executes the chain and returns the matching documents.
func (ch *Chain) Data(ctx context.Context) ([]Document, error) {
	var out []Document

	if len(ch.src) == 1 {
		// A single collection can stop early when no sort reorders the
		// result afterwards.
		stopAfter := 0
		if ch.firstOnly && len(ch.sortKeys) == 0 {
			stopAfter = 1
		}
		out = ch.src[0].collect(ch.filter, stopAfter)
	} else {
		results := make([][]Document, len(ch.src))
		g, _ := errgroup.WithContext(ctx)
		for i, col := range ch.src {
			i, col := i, col
			g.Go(func() error {
				results[i] = col.collect(ch.filter, 0)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for _, r := range results {
			out = append(out, r...)
		}
	}

	if len(ch.sortKeys) > 0 {
		sortDocs(out, ch.sortKeys)
	}
	if ch.firstOnly && len(out) > 1 {
		out = out[:1]
	}
	return out, nil
}

// collect scans a collection for matches. When the filter carries an
// equality clause on an indexed path, the index narrows the candidate
// rows first; every candidate is still verified against the full filter.
func (c *Collection) collect(f filter.Compiled, stopAfter int) []Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Document

	if rows, ok := c.indexedCandidates(f); ok {
		it := rows.Iterator()
		for it.HasNext() {
			doc := c.docs[it.Next()]
			if matches(doc, f) {
				out = append(out, doc)
				if stopAfter > 0 && len(out) >= stopAfter {
					return out
				}
			}
		}
		return out
	}

	for _, doc := range c.docs {
		if matches(doc, f) {
			out = append(out, doc)
			if stopAfter > 0 && len(out) >= stopAfter {
				return out
			}
		}
	}
	return out
}

// indexedCandidates picks the narrowing row set for the filter's first
// indexed $eq clause, in path order for determinism. The second result
// is false when no clause can use an index.
func (c *Collection) indexedCandidates(f filter.Compiled) (*roaring.Bitmap, bool) {
	paths := make([]string, 0, len(f))
	for path := range f {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		cl := f[path]
		if cl.Op != filter.TargetEq {
			continue
		}
		ix, exists := c.indexes[path]
		if !exists {
			continue
		}
		rows := ix.rows(cl.Value)
		if rows == nil {
			rows = roaring.New()
		}
		return rows, true
	}
	return nil, false
}

// sortDocs orders documents by the compiled keys: primary key first,
// ties broken by subsequent keys. Missing values order before present
// ones ascending.
func sortDocs(docs []Document, keys []filter.SortKey) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range keys {
			c := compareAt(docs[i], docs[j], key.Path)
			if c == 0 {
				continue
			}
			if key.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareAt(a, b Document, path string) int {
	av, aok := valueAt(a, path)
	bv, bok := valueAt(b, path)

	if !aok || !bok {
		switch {
		case aok == bok:
			return 0
		case !aok:
			return -1
		default:
			return 1
		}
	}
	if c, ok := compare(av, bv); ok {
		return c
	}
	return 0
}
