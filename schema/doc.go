// Package schema provides the type information the filter compiler is
// scoped by: named types, per-field type lookup (named type, list-valued,
// nullable), and resolution of the concrete member types behind an
// interface or union type.
//
// The compiler treats a lookup miss as fatal for the whole query; the
// caller is expected to have validated filters against the schema before
// handing them down.
package schema
