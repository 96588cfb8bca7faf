package store

import (
	"regexp"
	"strings"

	"github.com/docsift/docsift/filter"
)

// valueAt resolves a dotted path on a document. Descent only crosses
// sub-documents; list values terminate it (list matching goes through
// the contains operators and $elemMatch instead).
func valueAt(doc Document, path string) (any, bool) {
	var v any = map[string]any(doc)
	ok := true
	for _, seg := range strings.Split(path, ".") {
		m, isMap := v.(map[string]any)
		if !isMap {
			return nil, false
		}
		v, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return v, ok
}

// matches reports whether a document satisfies every clause of a
// compiled filter.
func matches(doc Document, f filter.Compiled) bool {
	for path, cl := range f {
		v, present := valueAt(doc, path)
		if !clauseMatches(cl, v, present) {
			return false
		}
	}
	return true
}

func clauseMatches(cl filter.Clause, v any, present bool) bool {
	switch cl.Op {
	case filter.TargetEq:
		return present && equal(v, cl.Value)

	case filter.TargetNe:
		if cl.Value == filter.Undefined {
			// Anything stored, null included, differs from undefined.
			return present
		}
		return !present || !equal(v, cl.Value)

	case filter.TargetIn:
		return containsValue(operandList(cl.Value), v, present)

	case filter.TargetNin:
		return !containsValue(operandList(cl.Value), v, present)

	case filter.TargetGt:
		c, ok := compare(v, cl.Value)
		return present && ok && c > 0
	case filter.TargetGte:
		c, ok := compare(v, cl.Value)
		return present && ok && c >= 0
	case filter.TargetLt:
		c, ok := compare(v, cl.Value)
		return present && ok && c < 0
	case filter.TargetLte:
		c, ok := compare(v, cl.Value)
		return present && ok && c <= 0

	case filter.TargetContains:
		for _, el := range elements(v, present) {
			if equal(el, cl.Value) {
				return true
			}
		}
		return false

	case filter.TargetContainsAny:
		for _, el := range elements(v, present) {
			if containsValue(operandList(cl.Value), el, true) {
				return true
			}
		}
		return false

	case filter.TargetContainsNone:
		for _, el := range elements(v, present) {
			if containsValue(operandList(cl.Value), el, true) {
				return false
			}
		}
		return true

	case filter.TargetRegex:
		re, ok := cl.Value.(*regexp.Regexp)
		if !ok || !present {
			return false
		}
		s, isStr := v.(string)
		return isStr && re.MatchString(s)

	case filter.TargetWhere:
		return cl.Where != nil && cl.Where(v, present)

	case filter.TargetElemMatch:
		for _, el := range elements(v, present) {
			sub, ok := el.(map[string]any)
			if ok && matches(Document(sub), cl.Elem) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// operandList normalizes an operator payload to a candidate slice. A
// scalar payload (e.g. a $containsNone born from a ne clause) becomes a
// single-element list.
func operandList(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case []int:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case []float64:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out
	case nil:
		return nil
	default:
		return []any{x}
	}
}

// containsValue reports whether the document value is among the
// candidates. The Undefined sentinel matches a missing field.
func containsValue(candidates []any, v any, present bool) bool {
	for _, c := range candidates {
		if c == filter.Undefined {
			if !present {
				return true
			}
			continue
		}
		if present && equal(v, c) {
			return true
		}
	}
	return false
}

func elements(v any, present bool) []any {
	if !present {
		return nil
	}
	return operandList(v)
}

// equal compares two document values. Numbers compare across integer
// and float representations; everything else requires matching types.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}

	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// compare orders two document values. Only numbers and strings order;
// the second result is false for incomparable pairs.
func compare(a, b any) (int, bool) {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
