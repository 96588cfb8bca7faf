// Package store is an embedded, in-memory, document-oriented store with
// the query surface the compiler targets: per-collection idempotent
// index creation and a chained query builder
// (Chain → Find → CompoundSort → Data).
//
// Collections are partitioned by concrete type. A View groups several
// collections behind one read-only chain for queries against an
// interface or union type; storage is never merged, only result sets.
//
// The store is read-only with respect to queries: Find and Data never
// mutate documents, and documents are materialized eagerly.
package store
