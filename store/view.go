package store

// View is a merged, read-only query surface over the collections of the
// concrete types behind an interface or union type. Storage stays
// per-collection; only result sets merge.
type View struct {
	collections []*Collection
}

// NewView groups collections into a view.
func NewView(cols ...*Collection) *View {
	return &View{collections: cols}
}

// Collections returns the member collections in view order.
func (v *View) Collections() []*Collection {
	return v.collections
}

// Chain starts a branched query chain over all member collections.
func (v *View) Chain() *Chain {
	return &Chain{src: v.collections}
}
