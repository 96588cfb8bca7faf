// Package filter compiles a schema-scoped source filter tree into the
// flat query form understood by the document store.
//
// The source dialect is permissive about null and missing fields: a null
// comparison matches absent values, a negation is satisfied by a missing
// path. The target dialect checks only the literal leaf value. The
// compiler bridges the two in four stages: operator translation
// (Translate), dotted-path flattening (Flatten), null/missing
// reconciliation (Reconcile) and resolved-field lifting (Lift). Sort
// specifications compile separately via CompileSort.
//
// Translation never mutates its input; it is a pure structural recursion
// over the tree.
package filter
