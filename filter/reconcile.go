package filter

import "strings"

// Reconcile patches the one case where the two dialects disagree after
// flattening: `$ne: true`. The source dialect treats a missing path, or
// a null met while descending to it, as satisfying "not equal to true";
// the target dialect compares only the literal leaf value. Each such
// clause is rewritten into a $where predicate keyed by the clause's
// top-level field that reproduces the source semantics.
func Reconcile(c Compiled) {
	type rewrite struct {
		oldPath string
		newPath string
		clause  Clause
	}
	var rewrites []rewrite

	for path, cl := range c {
		if cl.Op != TargetNe || cl.Value != true {
			continue
		}
		head, rest, _ := strings.Cut(path, ".")
		rewrites = append(rewrites, rewrite{
			oldPath: path,
			newPath: head,
			clause:  Clause{Op: TargetWhere, Where: notTrueAt(rest)},
		})
	}

	for _, rw := range rewrites {
		delete(c, rw.oldPath)
		c[rw.newPath] = rw.clause
	}
}

// notTrueAt builds a predicate over the top-level field value that walks
// the remaining dotted sub-path. Any null or missing hop satisfies the
// negation; otherwise the leaf must not be strictly true.
func notTrueAt(subPath string) Predicate {
	var segs []string
	if subPath != "" {
		segs = strings.Split(subPath, ".")
	}
	return func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		for _, seg := range segs {
			m, ok := v.(map[string]any)
			if !ok {
				// Can't descend further, so the leaf can't be true.
				return true
			}
			v, present = m[seg]
			if !present || v == nil {
				return true
			}
		}
		b, ok := v.(bool)
		return !ok || !b
	}
}
