package schema

import "fmt"

// Kind classifies a named type.
type Kind uint8

const (
	// KindScalar represents a leaf type (String, Int, Boolean, ...).
	KindScalar Kind = iota
	// KindObject represents a concrete type backed by its own collection.
	KindObject
	// KindInterface represents a family of concrete types sharing fields.
	KindInterface
	// KindUnion represents a family of concrete types sharing nothing.
	KindUnion
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindObject:
		return "Object"
	case KindInterface:
		return "Interface"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// Field describes a single field of a type.
type Field struct {
	// Type is the name of the field's named type, e.g. "String" or "Author".
	Type string
	// List reports whether the field holds a list of Type values.
	List bool
	// Nullable reports whether the field may hold null.
	Nullable bool
}

// IsBoolean reports whether the field's named type is the Boolean scalar.
func (f Field) IsBoolean() bool { return f.Type == "Boolean" }

// Type is a named schema type.
type Type struct {
	Name   string
	Kind   Kind
	Fields map[string]Field
	// Members lists concrete type names for interface and union types.
	Members []string
}

// Field looks up a field by name.
func (t *Type) Field(name string) (Field, error) {
	f, ok := t.Fields[name]
	if !ok {
		return Field{}, &ErrUnknownField{Type: t.Name, Field: name}
	}
	return f, nil
}

// Object creates a concrete type.
func Object(name string, fields map[string]Field) *Type {
	return &Type{Name: name, Kind: KindObject, Fields: fields}
}

// Interface creates an interface type with the given shared fields and
// concrete member type names.
func Interface(name string, fields map[string]Field, members ...string) *Type {
	return &Type{Name: name, Kind: KindInterface, Fields: fields, Members: members}
}

// Union creates a union type over the given concrete member type names.
func Union(name string, members ...string) *Type {
	return &Type{Name: name, Kind: KindUnion, Members: members}
}

// Schema is a closed set of named types.
type Schema struct {
	types map[string]*Type
}

// New creates a schema from the given types.
func New(types ...*Type) *Schema {
	m := make(map[string]*Type, len(types))
	for _, t := range types {
		m[t.Name] = t
	}
	return &Schema{types: m}
}

// Type looks up a named type.
func (s *Schema) Type(name string) (*Type, error) {
	t, ok := s.types[name]
	if !ok {
		return nil, &ErrUnknownType{Name: name}
	}
	return t, nil
}

// Nested resolves the object type behind a field, if any. Scalar-typed
// fields have no nested type.
func (s *Schema) Nested(f Field) (*Type, bool) {
	t, ok := s.types[f.Type]
	if !ok || t.Kind != KindObject {
		return nil, false
	}
	return t, true
}

// Concrete resolves the concrete type names a query against name spans:
// the type itself for an object type, the member types for an interface
// or union type.
func (s *Schema) Concrete(name string) ([]string, error) {
	t, err := s.Type(name)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case KindObject:
		return []string{t.Name}, nil
	case KindInterface, KindUnion:
		return t.Members, nil
	default:
		return nil, fmt.Errorf("type %q is not queryable", name)
	}
}

// ErrUnknownType indicates a lookup of a type the schema does not define.
type ErrUnknownType struct {
	Name string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %q", e.Name)
}

// ErrUnknownField indicates a filter key that does not exist on the
// scoped type.
type ErrUnknownField struct {
	Type  string
	Field string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field %q on type %q", e.Field, e.Type)
}
