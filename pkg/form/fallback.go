package form

import (
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

// InferFallback derives a structural empty value for n: "" for strings, 0
// for numbers, false for booleans and an empty record for dicts, objects and
// intersections. Every other kind has no canonical empty shape and yields
// undefined.
func InferFallback(n *schema.Node) value.Value {
	if n == nil {
		return value.Undefined()
	}

	switch n.Kind {
	case schema.KindString:
		return value.String("")
	case schema.KindNumber:
		return value.Number(0)
	case schema.KindBoolean:
		return value.Bool(false)
	case schema.KindDict, schema.KindObject, schema.KindIntersect:
		return value.EmptyRecord()
	case schema.KindBitset, schema.KindConst,
		schema.KindFunction, schema.KindTransform, schema.KindIs,
		schema.KindArray, schema.KindUnion, schema.KindTuple:
		return value.Undefined()
	default:
		return value.Undefined()
	}
}

// GetFallback returns the initial value of a field described by n. An
// authored default always wins and is deep-copied so callers may mutate the
// result. Without one, required fields get InferFallback and optional fields
// stay undefined. A union with a single resolvable choice never gets a
// fallback since there is nothing to choose between.
//
// A null default counts as unset.
func GetFallback(n *schema.Node, required bool) value.Value {
	if n == nil {
		return value.Undefined()
	}
	if n.Kind == schema.KindUnion && len(Choices(n)) == 1 {
		return value.Undefined()
	}

	if !n.Meta.Default.IsNullish() {
		return value.Clone(n.Meta.Default)
	}
	if required {
		return InferFallback(n)
	}
	return value.Undefined()
}
