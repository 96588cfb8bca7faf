// Package advisor promotes frequently filtered field paths to store
// indexes. It keeps process-wide usage counters per dotted path across
// all compiled queries; the increment that lands a counter exactly on
// the threshold requests index creation on the queried collection. Sort
// paths are indexed unconditionally, since sorting builds the same
// ordering structures anyway.
//
// The table is explicitly owned, not package-global: construct one
// Advisor at process start, and bind its Reset to the cache-invalidation
// bus so counters restart from zero when cached query state is dropped.
package advisor
