package filter

import "fmt"

// Op identifies a source-dialect operator. The set is closed so the
// translator can match it exhaustively instead of passing unknown
// operators through.
type Op uint8

const (
	// OpInvalid represents an invalid operator.
	OpInvalid Op = iota
	// OpEq matches values equal to the operand.
	OpEq
	// OpNe matches values not equal to the operand.
	OpNe
	// OpIn matches values contained in the operand list.
	OpIn
	// OpNin matches values not contained in the operand list.
	OpNin
	// OpGt matches values greater than the operand.
	OpGt
	// OpGte matches values greater than or equal to the operand.
	OpGte
	// OpLt matches values less than the operand.
	OpLt
	// OpLte matches values less than or equal to the operand.
	OpLte
	// OpRegex matches string values against a regular expression.
	OpRegex
	// OpGlob matches string values against a glob pattern.
	OpGlob
)

// String returns the source-dialect name of the operator.
func (op Op) String() string {
	switch op {
	case OpEq:
		return "eq"
	case OpNe:
		return "ne"
	case OpIn:
		return "in"
	case OpNin:
		return "nin"
	case OpGt:
		return "gt"
	case OpGte:
		return "gte"
	case OpLt:
		return "lt"
	case OpLte:
		return "lte"
	case OpRegex:
		return "regex"
	case OpGlob:
		return "glob"
	default:
		return "invalid"
	}
}

// ParseOp maps a source-dialect operator name to its Op.
func ParseOp(name string) (Op, bool) {
	switch name {
	case "eq":
		return OpEq, true
	case "ne":
		return OpNe, true
	case "in":
		return OpIn, true
	case "nin":
		return OpNin, true
	case "gt":
		return OpGt, true
	case "gte":
		return OpGte, true
	case "lt":
		return OpLt, true
	case "lte":
		return OpLte, true
	case "regex":
		return OpRegex, true
	case "glob":
		return OpGlob, true
	default:
		return OpInvalid, false
	}
}

// KeyElemMatch is the source-dialect key requiring at least one element
// of a list-valued field to satisfy a sub-filter. It scopes a sub-tree,
// not a terminal clause.
const KeyElemMatch = "elemMatch"

// Node is a raw filter tree: field name to term.
type Node map[string]*Term

// Term is one entry of a filter tree, either a nested sub-filter or a
// terminal operator clause.
type Term struct {
	// Sub is the nested sub-filter. When non-nil the term is structural
	// and Op/Value are ignored.
	Sub Node
	// Op and Value form the terminal clause when Sub is nil.
	Op    Op
	Value any
}

// Subtree creates a structural term.
func Subtree(n Node) *Term { return &Term{Sub: n} }

// Leaf creates a terminal clause term.
func Leaf(op Op, value any) *Term { return &Term{Op: op, Value: value} }

// TargetOp is a target-dialect operator key, the wire shape the store
// evaluates.
type TargetOp string

const (
	// TargetEq matches the exact stored value.
	TargetEq TargetOp = "$eq"
	// TargetNe matches any value but the operand.
	TargetNe TargetOp = "$ne"
	// TargetIn matches values contained in the operand list.
	TargetIn TargetOp = "$in"
	// TargetNin matches values not contained in the operand list.
	TargetNin TargetOp = "$nin"
	// TargetGt matches values greater than the operand.
	TargetGt TargetOp = "$gt"
	// TargetGte matches values greater than or equal to the operand.
	TargetGte TargetOp = "$gte"
	// TargetLt matches values less than the operand.
	TargetLt TargetOp = "$lt"
	// TargetLte matches values less than or equal to the operand.
	TargetLte TargetOp = "$lte"
	// TargetContains matches list fields containing the operand.
	TargetContains TargetOp = "$contains"
	// TargetContainsAny matches list fields containing any operand element.
	TargetContainsAny TargetOp = "$containsAny"
	// TargetContainsNone matches list fields containing no operand element.
	TargetContainsNone TargetOp = "$containsNone"
	// TargetRegex matches string values against a compiled pattern.
	TargetRegex TargetOp = "$regex"
	// TargetWhere evaluates a predicate against the value at the path.
	TargetWhere TargetOp = "$where"
	// TargetElemMatch evaluates a compiled sub-filter against elements of
	// a list field.
	TargetElemMatch TargetOp = "$elemMatch"
)

// Undefined marks the absence of a field inside operator payloads, so a
// clause can distinguish "stored null" from "no value stored at all".
var Undefined = undefined{}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Predicate is the value shape of a $where clause: a test over the value
// found at the clause's path. present is false when the path does not
// exist on the document.
type Predicate func(v any, present bool) bool

// Clause is a single target-dialect operator clause.
type Clause struct {
	Op TargetOp
	// Value holds the operand for literal-valued operators. $regex
	// clauses carry a *regexp.Regexp.
	Value any
	// Where holds the predicate for $where clauses.
	Where Predicate
	// Elem holds the compiled sub-filter for $elemMatch clauses.
	Elem Compiled
}

// Compiled is a flat filter: dotted field path to clause. Keys are
// unique; insertion order carries no meaning.
type Compiled map[string]Clause

// ErrUnsupportedOperator indicates a terminal clause whose operator the
// translator does not handle.
type ErrUnsupportedOperator struct {
	Op Op
}

func (e *ErrUnsupportedOperator) Error() string {
	return fmt.Sprintf("unsupported filter operator: %s", e.Op)
}

// ErrBadPattern indicates a regex or glob pattern that failed to compile.
//
// The original compile error can be accessed via errors.Unwrap.
type ErrBadPattern struct {
	Pattern string
	cause   error
}

func (e *ErrBadPattern) Error() string {
	return fmt.Sprintf("bad pattern %q: %v", e.Pattern, e.cause)
}

func (e *ErrBadPattern) Unwrap() error { return e.cause }
