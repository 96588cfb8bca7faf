package docsift

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordQuery is called after each query execution. matched is the
	// size of the materialized result set.
	RecordQuery(typeName string, duration time.Duration, matched int)

	// RecordIndexRequest is called for every index-creation request the
	// advisor issues, including idempotent re-requests.
	RecordIndexRequest(path string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuery(string, time.Duration, int) {}
func (NoopMetricsCollector) RecordIndexRequest(string)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	QueryCount      atomic.Int64
	QueryTotalNanos atomic.Int64
	MatchedTotal    atomic.Int64
	IndexRequests   atomic.Int64
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(typeName string, duration time.Duration, matched int) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	b.MatchedTotal.Add(int64(matched))
}

// RecordIndexRequest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexRequest(path string) {
	b.IndexRequests.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		QueryCount:    b.QueryCount.Load(),
		MatchedTotal:  b.MatchedTotal.Load(),
		IndexRequests: b.IndexRequests.Load(),
	}
	if stats.QueryCount > 0 {
		stats.QueryAvgNanos = b.QueryTotalNanos.Load() / stats.QueryCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	QueryCount    int64
	QueryAvgNanos int64
	MatchedTotal  int64
	IndexRequests int64
}
