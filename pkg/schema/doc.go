// Package schema defines the schema tree consumed by the form helpers: a
// recursive Node tagged with a Kind from a fixed set of primitive, dynamic,
// composite and combinator tags. Object fields are an ordered slice because
// title inference looks at the first declared field.
//
// Trees are built by the caller (directly through the constructors here, or
// by the schemafile and openapi adapters) and are never mutated by the
// packages that inspect them. Source and Document describe where serialised
// schema documents come from.
package schema
