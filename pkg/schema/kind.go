package schema

// Kind is the tag carried by every schema node.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindBitset  Kind = "bitset"
	KindConst   Kind = "const"

	KindFunction  Kind = "function"
	KindTransform Kind = "transform"
	KindIs        Kind = "is"

	KindArray Kind = "array"
	KindDict  Kind = "dict"

	KindObject    Kind = "object"
	KindIntersect Kind = "intersect"
	KindUnion     Kind = "union"
	KindTuple     Kind = "tuple"
)

// Family groups kinds by how a form engine can treat them.
type Family int

const (
	// FamilyUnknown covers tags outside the fixed set.
	FamilyUnknown Family = iota
	// FamilyPrimitive kinds are atomic and directly renderable.
	FamilyPrimitive
	// FamilyDynamic kinds are opaque predicates or transforms.
	FamilyDynamic
	// FamilyComposite kinds wrap exactly one inner schema.
	FamilyComposite
	// FamilyCombinator kinds combine several child schemas.
	FamilyCombinator
)

func (f Family) String() string {
	switch f {
	case FamilyPrimitive:
		return "primitive"
	case FamilyDynamic:
		return "dynamic"
	case FamilyComposite:
		return "composite"
	case FamilyCombinator:
		return "combinator"
	default:
		return "unknown"
	}
}

var allKinds = []Kind{
	KindString, KindNumber, KindBoolean, KindBitset, KindConst,
	KindFunction, KindTransform, KindIs,
	KindArray, KindDict,
	KindObject, KindIntersect, KindUnion, KindTuple,
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// Family reports the family k belongs to.
func (k Kind) Family() Family {
	switch k {
	case KindString, KindNumber, KindBoolean, KindBitset, KindConst:
		return FamilyPrimitive
	case KindFunction, KindTransform, KindIs:
		return FamilyDynamic
	case KindArray, KindDict:
		return FamilyComposite
	case KindObject, KindIntersect, KindUnion, KindTuple:
		return FamilyCombinator
	default:
		return FamilyUnknown
	}
}

// Known reports whether k is one of the fixed tags.
func (k Kind) Known() bool { return k.Family() != FamilyUnknown }

// IsPrimitive reports whether k is atomic and directly renderable.
func (k Kind) IsPrimitive() bool { return k.Family() == FamilyPrimitive }

// IsDynamic reports whether k is defined by an opaque predicate or transform.
func (k Kind) IsDynamic() bool { return k.Family() == FamilyDynamic }

// IsComposite reports whether k wraps a single inner schema.
func (k Kind) IsComposite() bool { return k.Family() == FamilyComposite }

// HasInner reports whether nodes of kind k carry an Inner schema.
func (k Kind) HasInner() bool {
	return k == KindArray || k == KindDict || k == KindTransform
}

// HasList reports whether nodes of kind k carry a List of children.
func (k Kind) HasList() bool {
	return k == KindIntersect || k == KindUnion || k == KindTuple
}
