package filter

import (
	"github.com/docsift/docsift/schema"
)

// Tree is an operator-translated filter, still nested, keyed by field
// names and target-dialect operator keys.
type Tree map[string]*TreeTerm

// TreeTerm is one entry of a translated tree: a nested sub-tree or a
// translated terminal clause.
type TreeTerm struct {
	Sub    Tree
	Clause *Clause
}

// Translate converts a source filter tree scoped to the given type into
// an equivalent tree using target-dialect operators. The schema resolves
// nested field types and detects list-valued and boolean fields; a key
// that does not exist on the scoped type aborts the translation.
func Translate(n Node, scope *schema.Type, s *schema.Schema) (Tree, error) {
	out := make(Tree, len(n))
	for key, term := range n {
		if term.Sub != nil {
			if key == KeyElemMatch {
				// elemMatch scopes a sub-query over list elements; the
				// element type is the scope we already descended into.
				sub, err := Translate(term.Sub, scope, s)
				if err != nil {
					return nil, err
				}
				out[string(TargetElemMatch)] = &TreeTerm{Sub: sub}
				continue
			}

			f, err := scope.Field(key)
			if err != nil {
				return nil, err
			}
			nested, ok := s.Nested(f)
			if !ok {
				return nil, &schema.ErrUnknownType{Name: f.Type}
			}
			sub, err := Translate(term.Sub, nested, s)
			if err != nil {
				return nil, err
			}
			out[key] = &TreeTerm{Sub: sub}
			continue
		}

		f, err := scope.Field(key)
		if err != nil {
			return nil, err
		}
		cl, err := translateLeaf(f, term.Op, term.Value)
		if err != nil {
			return nil, err
		}
		out[key] = &TreeTerm{Clause: cl}
	}
	return out, nil
}

// translateLeaf applies the per-operator translation rules. List-valued
// type checks run before null-value checks; reordering changes matching
// semantics.
func translateLeaf(f schema.Field, op Op, value any) (*Clause, error) {
	switch op {
	case OpRegex:
		pattern, _ := value.(string)
		re, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		// The target dialect's $regex only sees present values; the
		// source dialect wants a plain non-match on absent fields, so the
		// test runs inside a predicate that answers false for them.
		pred := func(v any, present bool) bool {
			if !present || v == nil {
				return false
			}
			s, ok := v.(string)
			return ok && re.MatchString(s)
		}
		return &Clause{Op: TargetWhere, Where: pred}, nil

	case OpGlob:
		pattern, _ := value.(string)
		re, err := globPattern(pattern)
		if err != nil {
			return nil, err
		}
		return &Clause{Op: TargetRegex, Value: re}, nil

	case OpEq:
		if f.List {
			return &Clause{Op: TargetContains, Value: value}, nil
		}
		if value == nil {
			// Null and missing are the same thing to the source dialect.
			return &Clause{Op: TargetIn, Value: []any{nil, Undefined}}, nil
		}
		return &Clause{Op: TargetEq, Value: value}, nil

	case OpNe:
		if f.List {
			return &Clause{Op: TargetContainsNone, Value: value}, nil
		}
		if value == nil {
			return &Clause{Op: TargetNe, Value: Undefined}, nil
		}
		return &Clause{Op: TargetNe, Value: value}, nil

	case OpIn:
		if f.List {
			return &Clause{Op: TargetContainsAny, Value: value}, nil
		}
		return &Clause{Op: TargetIn, Value: value}, nil

	case OpNin:
		if f.List {
			return &Clause{Op: TargetContainsNone, Value: value}, nil
		}
		if f.IsBoolean() {
			values, _ := value.([]any)
			withUndefined := make([]any, 0, len(values)+1)
			withUndefined = append(withUndefined, values...)
			withUndefined = append(withUndefined, Undefined)
			return &Clause{Op: TargetNin, Value: withUndefined}, nil
		}
		return &Clause{Op: TargetNin, Value: value}, nil

	case OpGt:
		return &Clause{Op: TargetGt, Value: value}, nil
	case OpGte:
		return &Clause{Op: TargetGte, Value: value}, nil
	case OpLt:
		return &Clause{Op: TargetLt, Value: value}, nil
	case OpLte:
		return &Clause{Op: TargetLte, Value: value}, nil

	default:
		return nil, &ErrUnsupportedOperator{Op: op}
	}
}
