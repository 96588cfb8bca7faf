package filter

// ResolvedPrefix is the reserved namespace holding computed (non-stored)
// field values on a document.
const ResolvedPrefix = "$resolved"

// Lift redirects compiled clauses that address computed fields into the
// resolved-value namespace, so the store filters on the precomputed
// values instead of re-deriving them. resolved holds the dotted paths of
// the fields resolved ahead of this query (see FlattenPaths).
func Lift(c Compiled, resolved map[string]struct{}) {
	if len(resolved) == 0 {
		return
	}
	for path := range resolved {
		cl, ok := c[path]
		if !ok {
			continue
		}
		delete(c, path)
		c[ResolvedPrefix+"."+path] = cl
	}
}
