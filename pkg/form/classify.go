package form

import "github.com/goliatone/go-formschema/pkg/schema"

// IsObjectLike reports whether n can be rendered as a single object form: an
// object, an intersection of object-like schemas, or a union whose choices
// are all object-like.
func IsObjectLike(n *schema.Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case schema.KindObject:
		return true
	case schema.KindIntersect:
		return all(n.List, IsObjectLike)
	case schema.KindUnion:
		return all(Choices(n), IsObjectLike)
	case schema.KindString, schema.KindNumber, schema.KindBoolean, schema.KindBitset, schema.KindConst,
		schema.KindFunction, schema.KindTransform, schema.KindIs,
		schema.KindArray, schema.KindDict, schema.KindTuple:
		return false
	default:
		return false
	}
}

// Choices returns the alternatives of a union that can be offered to a user.
// Hidden and dynamic branches are dropped; when nothing concrete is left, the
// inner schemas of the dropped transform branches are returned instead.
// Nodes other than unions have no choices.
func Choices(n *schema.Node) []*schema.Node {
	if n == nil || n.Kind != schema.KindUnion {
		return nil
	}

	var choices, inner []*schema.Node
	for _, item := range n.List {
		if item == nil || item.Meta.Hidden {
			continue
		}
		if item.Kind == schema.KindTransform {
			inner = append(inner, item.Inner)
		}
		if item.Kind.IsDynamic() {
			continue
		}
		choices = append(choices, item)
	}

	if len(choices) > 0 {
		return choices
	}
	return inner
}

// IsValidatable reports whether the form engine can render n without
// falling back to a raw field. Absent and hidden schemas are trivially
// renderable since they are skipped. Anything not recognised is rejected.
func IsValidatable(n *schema.Node) bool {
	if n == nil || n.Meta.Hidden {
		return true
	}

	switch n.Kind {
	case schema.KindObject:
		for _, field := range n.Fields {
			if !IsValidatable(field.Schema) {
				return false
			}
		}
		return true
	case schema.KindIntersect:
		return all(n.List, IsObjectLike)
	case schema.KindUnion:
		choices := Choices(n)
		return len(choices) == 1 || all(choices, IsValidatable)
	case schema.KindArray, schema.KindDict:
		return IsValidatable(n.Inner)
	case schema.KindTuple:
		return all(n.List, isPrimitive)
	case schema.KindString, schema.KindNumber, schema.KindBoolean, schema.KindBitset, schema.KindConst:
		return true
	case schema.KindFunction, schema.KindTransform, schema.KindIs:
		return false
	default:
		return false
	}
}

// HasTitle reports whether n already carries a human-readable title, so the
// form layer does not need to synthesise a label. Objects without a
// description look through to their first declared field; intersections to
// their first member; unions only when a single choice remains. A
// renderable array or dict is self-describing when it is the form root.
func HasTitle(n *schema.Node, isRoot bool) bool {
	if n == nil {
		return true
	}

	switch n.Kind {
	case schema.KindObject:
		if n.Meta.Description != "" {
			return true
		}
		if len(n.Fields) == 0 {
			return true
		}
		return HasTitle(n.Fields[0].Schema, false)
	case schema.KindIntersect:
		return HasTitle(first(n.List), false)
	case schema.KindUnion:
		choices := Choices(n)
		if len(choices) == 1 {
			return HasTitle(choices[0], false)
		}
		return false
	case schema.KindArray, schema.KindDict:
		return isRoot && IsValidatable(n.Inner)
	case schema.KindString, schema.KindNumber, schema.KindBoolean, schema.KindBitset, schema.KindConst,
		schema.KindFunction, schema.KindTransform, schema.KindIs,
		schema.KindTuple:
		return false
	default:
		return false
	}
}

func isPrimitive(n *schema.Node) bool {
	return n != nil && n.Kind.IsPrimitive()
}

func all(nodes []*schema.Node, pred func(*schema.Node) bool) bool {
	for _, node := range nodes {
		if !pred(node) {
			return false
		}
	}
	return true
}

func first(nodes []*schema.Node) *schema.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
