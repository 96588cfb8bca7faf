// Package docsift translates schema-scoped filter/sort specifications
// into the query algebra of an embedded, in-memory document store and
// executes them against one or more type-partitioned collections.
//
// The Executor is the entry point: it compiles the caller's filter tree
// (permissive null/missing semantics) into the store's flat clause form
// (strict presence semantics), consults a usage-driven index advisor,
// resolves interface/union types to their member collections, and
// materializes the matching documents.
//
//	ex, _ := docsift.New(sch, st)
//	defer ex.Close()
//
//	docs, err := ex.RunQuery(ctx, "Article", docsift.QuerySpec{
//	    Filter: filter.Node{"draft": filter.Leaf(filter.OpNe, true)},
//	    Sort:   &filter.SortSpec{Fields: []string{"title"}},
//	})
package docsift
