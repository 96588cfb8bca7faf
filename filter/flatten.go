package filter

// Flatten converts a translated tree into the store's flat query form:
// dotted field path to terminal clause.
//
// $elemMatch sub-trees are never flattened through. The store evaluates
// them as one sub-query per list element, so the payload is flattened
// independently and stored whole under the accumulated path.
func Flatten(t Tree) Compiled {
	out := make(Compiled)
	flattenInto(out, "", t)
	return out
}

func flattenInto(out Compiled, prefix string, t Tree) {
	for key, term := range t {
		if key == string(TargetElemMatch) {
			out[prefix] = Clause{Op: TargetElemMatch, Elem: Flatten(term.Sub)}
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if term.Clause != nil {
			out[path] = *term.Clause
			continue
		}
		flattenInto(out, path, term.Sub)
	}
}

// FlattenPaths returns the dotted paths addressed by a nested value map,
// using the same descent rule as Flatten: any nested map extends the
// path, anything else terminates it.
func FlattenPaths(m map[string]any) map[string]struct{} {
	out := make(map[string]struct{})
	flattenPathsInto(out, "", m)
	return out
}

func flattenPathsInto(out map[string]struct{}, prefix string, m map[string]any) {
	for key, v := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, ok := v.(map[string]any); ok {
			flattenPathsInto(out, path, sub)
			continue
		}
		out[path] = struct{}{}
	}
}
