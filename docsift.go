package docsift

import (
	"context"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/docsift/docsift/advisor"
	"github.com/docsift/docsift/filter"
	"github.com/docsift/docsift/schema"
	"github.com/docsift/docsift/store"
)

// QuerySpec is a raw query against one schema type.
type QuerySpec struct {
	// Filter is the source-dialect filter tree. Nil matches everything.
	Filter filter.Node
	// Sort orders the result set; nil leaves insertion order.
	Sort *filter.SortSpec
	// Resolved marks fields whose values were computed ahead of the
	// query and stored under the document's $resolved namespace. Nested
	// maps mark nested fields; only the dotted key structure matters.
	Resolved map[string]any
	// FirstOnly limits materialization to the first match. It is an
	// execution hint, not a semantic change.
	FirstOnly bool
}

// QueryResult is the outcome delivered by RunQueryAsync.
type QueryResult struct {
	Documents []store.Document
	Err       error
}

// Executor compiles and runs queries.
type Executor struct {
	schema  *schema.Schema
	store   *store.Store
	advisor *advisor.Advisor
	logger  *Logger
	metrics MetricsCollector
	pool    *ants.Pool
}

// New creates an Executor over a schema and a store.
func New(s *schema.Schema, st *store.Store, optFns ...Option) (*Executor, error) {
	o := applyOptions(optFns)

	e := &Executor{
		schema:  s,
		store:   st,
		logger:  o.logger,
		metrics: o.metrics,
	}
	e.advisor = advisor.New(
		advisor.WithThreshold(o.indexThreshold),
		advisor.WithRequestHook(func(path string) {
			e.metrics.RecordIndexRequest(path)
		}),
	)
	if o.bus != nil {
		e.advisor.BindInvalidation(o.bus)
	}

	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		return nil, err
	}
	e.pool = pool
	return e, nil
}

// Close releases the async worker pool.
func (e *Executor) Close() error {
	e.pool.Release()
	return nil
}

// Advisor exposes the executor's usage table, e.g. to reset it directly
// instead of through a bus.
func (e *Executor) Advisor() *advisor.Advisor { return e.advisor }

// Compile translates a query spec scoped to a type into the store's
// compiled filter and sort forms without executing it.
func (e *Executor) Compile(typeName string, q QuerySpec) (filter.Compiled, []filter.SortKey, error) {
	t, err := e.schema.Type(typeName)
	if err != nil {
		return nil, nil, translateError(err)
	}

	compiled := filter.Compiled{}
	if q.Filter != nil {
		tree, err := filter.Translate(q.Filter, t, e.schema)
		if err != nil {
			return nil, nil, translateError(err)
		}
		compiled = filter.Flatten(tree)
		filter.Reconcile(compiled)
		if q.Resolved != nil {
			filter.Lift(compiled, filter.FlattenPaths(q.Resolved))
		}
	}

	var keys []filter.SortKey
	if q.Sort != nil {
		keys = filter.CompileSort(*q.Sort)
	}
	return compiled, keys, nil
}

// RunQuery compiles and executes a query, returning the materialized
// result set. Matching nothing is a success with an empty result.
func (e *Executor) RunQuery(ctx context.Context, typeName string, q QuerySpec) ([]store.Document, error) {
	start := time.Now()

	docs, err := e.runQuery(ctx, typeName, q)

	e.metrics.RecordQuery(typeName, time.Since(start), len(docs))
	e.logger.LogQuery(ctx, typeName, len(docs), err)
	return docs, err
}

func (e *Executor) runQuery(ctx context.Context, typeName string, q QuerySpec) ([]store.Document, error) {
	compiled, sortKeys, err := e.Compile(typeName, q)
	if err != nil {
		return nil, err
	}

	names, err := e.schema.Concrete(typeName)
	if err != nil {
		return nil, translateError(err)
	}
	if len(names) == 0 {
		// An interface nobody implements matches nothing.
		return nil, nil
	}

	var chain *store.Chain
	if len(names) > 1 {
		chain = e.store.View(names).Chain()
	} else {
		col := e.store.Collection(names[0])
		if err := e.advisor.Observe(col, compiled); err != nil {
			return nil, err
		}
		if len(sortKeys) > 0 {
			if err := e.advisor.ObserveSort(col, sortKeys); err != nil {
				return nil, err
			}
		}
		chain = col.Chain()
	}

	chain = chain.Find(compiled, q.FirstOnly)
	if len(sortKeys) > 0 {
		chain = chain.CompoundSort(sortKeys)
	}
	return chain.Data(ctx)
}

// RunQueryAsync runs the query on the executor's worker pool and
// delivers the result on the returned channel. The channel is buffered;
// the result is never dropped. Deadline and cancellation policy belong
// to the caller's context.
func (e *Executor) RunQueryAsync(ctx context.Context, typeName string, q QuerySpec) <-chan QueryResult {
	ch := make(chan QueryResult, 1)
	err := e.pool.Submit(func() {
		docs, err := e.RunQuery(ctx, typeName, q)
		ch <- QueryResult{Documents: docs, Err: err}
	})
	if err != nil {
		ch <- QueryResult{Err: err}
	}
	return ch
}
