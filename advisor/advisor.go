package advisor

import (
	"sort"
	"sync"

	"github.com/docsift/docsift/filter"
)

// DefaultThreshold is the usage count at which a field path is promoted
// to an indexed path.
const DefaultThreshold = 5

// EventInvalidate is the bus event whose handler clears the usage table.
const EventInvalidate = "invalidate"

// Indexer is the slice of the storage contract the advisor consumes.
// EnsureIndex must be idempotent; re-requesting an existing index is a
// harmless no-op.
type Indexer interface {
	EnsureIndex(path string) error
}

// Bus is the invalidation signal bus contract the advisor subscribes to.
type Bus interface {
	Subscribe(event string, handler func())
}

// Advisor tracks per-path filter usage and requests indexes once a path
// crosses the threshold.
//
// Counters are mutex-guarded: corrupting the map is fatal in Go, but the
// counts themselves only need to be approximately right. A query racing
// a Reset may observe a partially rebuilt table; that shifts an index
// trigger slightly, nothing more.
type Advisor struct {
	mu        sync.Mutex
	counts    map[string]int
	threshold int

	// onRequest, when set, observes every index-creation request.
	onRequest func(path string)
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithThreshold overrides the promotion threshold.
func WithThreshold(n int) Option {
	return func(a *Advisor) {
		if n > 0 {
			a.threshold = n
		}
	}
}

// WithRequestHook registers a hook invoked on every index-creation
// request, e.g. for metrics.
func WithRequestHook(fn func(path string)) Option {
	return func(a *Advisor) {
		a.onRequest = fn
	}
}

// New creates an empty advisor.
func New(optFns ...Option) *Advisor {
	a := &Advisor{
		counts:    make(map[string]int),
		threshold: DefaultThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(a)
		}
	}
	return a
}

// Observe counts every path of a compiled filter and requests index
// creation for each path whose counter becomes exactly the threshold.
// The check is an equality, not a range: once a path is past the
// threshold no further requests are issued until the table is reset.
func (a *Advisor) Observe(ix Indexer, f filter.Compiled) error {
	paths := make([]string, 0, len(f))
	for path := range f {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		a.mu.Lock()
		a.counts[path]++
		hit := a.counts[path] == a.threshold
		a.mu.Unlock()

		if !hit {
			continue
		}
		if err := a.ensure(ix, path); err != nil {
			return err
		}
	}
	return nil
}

// ObserveSort requests index creation for every sort path,
// unconditionally.
func (a *Advisor) ObserveSort(ix Indexer, keys []filter.SortKey) error {
	for _, key := range keys {
		if err := a.ensure(ix, key.Path); err != nil {
			return err
		}
	}
	return nil
}

func (a *Advisor) ensure(ix Indexer, path string) error {
	if a.onRequest != nil {
		a.onRequest(path)
	}
	return ix.EnsureIndex(path)
}

// Count returns the current usage count for a path.
func (a *Advisor) Count(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[path]
}

// Reset clears the usage table. A path previously near the threshold
// starts again from zero.
func (a *Advisor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts = make(map[string]int)
}

// BindInvalidation subscribes Reset to the invalidation event.
func (a *Advisor) BindInvalidation(b Bus) {
	b.Subscribe(EventInvalidate, a.Reset)
}

// MemoryBus is a minimal in-process Bus. Publish runs the handlers
// synchronously on the calling goroutine.
type MemoryBus struct {
	mu       sync.Mutex
	handlers map[string][]func()
}

// NewMemoryBus creates an empty bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string][]func())}
}

// Subscribe registers a handler for an event.
func (b *MemoryBus) Subscribe(event string, handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

// Publish invokes all handlers registered for an event.
func (b *MemoryBus) Publish(event string) {
	b.mu.Lock()
	handlers := append([]func(){}, b.handlers[event]...)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
