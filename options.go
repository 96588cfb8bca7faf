package docsift

import (
	"log/slog"
	"runtime"

	"github.com/docsift/docsift/advisor"
)

type options struct {
	logger         *Logger
	metrics        MetricsCollector
	indexThreshold int
	poolSize       int
	bus            advisor.Bus
}

// Option configures Executor construction.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets
// it. Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to
// disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithIndexThreshold overrides the usage count at which a filtered path
// is promoted to an index.
func WithIndexThreshold(n int) Option {
	return func(o *options) {
		o.indexThreshold = n
	}
}

// WithPoolSize bounds the async query worker pool. Defaults to the
// number of CPUs.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithInvalidationBus subscribes the executor's usage table to the
// cache-invalidation event, clearing it when the event fires.
func WithInvalidationBus(b advisor.Bus) Option {
	return func(o *options) {
		o.bus = b
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:         NoopLogger(),
		metrics:        NoopMetricsCollector{},
		indexThreshold: advisor.DefaultThreshold,
		poolSize:       runtime.NumCPU(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
