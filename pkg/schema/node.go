package schema

import "github.com/goliatone/go-formschema/pkg/value"

// Meta holds side-channel annotations attached to a node.
type Meta struct {
	// Hidden excludes the node from interactive choice.
	Hidden bool
	// Description is the human-readable title. Empty means unset.
	Description string
	// Default is the authored default. Undefined means unset.
	Default value.Value
}

// Field is a named object member. Objects keep fields in declaration order.
type Field struct {
	Name   string
	Schema *Node
}

// Node is one unit of a schema tree. Which of Inner, List and Fields is
// populated depends on Kind:
//
//	array, dict, transform      Inner
//	intersect, union, tuple     List
//	object                      Fields
//
// Nodes are treated as immutable once built. A nil *Node stands for an
// absent schema.
type Node struct {
	Kind   Kind
	Meta   Meta
	Inner  *Node
	List   []*Node
	Fields []Field
	// Value is the literal carried by const nodes.
	Value value.Value
}

// Field returns the schema of the named field on an object node.
func (n *Node) Field(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, field := range n.Fields {
		if field.Name == name {
			return field.Schema, true
		}
	}
	return nil, false
}

// FieldNames lists object field names in declaration order.
func (n *Node) FieldNames() []string {
	if n == nil || len(n.Fields) == 0 {
		return nil
	}
	names := make([]string, len(n.Fields))
	for i, field := range n.Fields {
		names[i] = field.Name
	}
	return names
}

// Hidden returns a copy of n marked hidden.
func (n *Node) Hidden() *Node {
	out := *n
	out.Meta.Hidden = true
	return &out
}

// Description returns a copy of n carrying the given title.
func (n *Node) Description(text string) *Node {
	out := *n
	out.Meta.Description = text
	return &out
}

// Default returns a copy of n carrying an authored default.
func (n *Node) Default(v value.Value) *Node {
	out := *n
	out.Meta.Default = v
	return &out
}

// String builds a text schema.
func String() *Node { return &Node{Kind: KindString} }

// Number builds a numeric schema.
func Number() *Node { return &Node{Kind: KindNumber} }

// Boolean builds a true/false schema.
func Boolean() *Node { return &Node{Kind: KindBoolean} }

// Bitset builds a flag set stored as a number.
func Bitset() *Node { return &Node{Kind: KindBitset} }

// Function builds a schema validated by an opaque function.
func Function() *Node { return &Node{Kind: KindFunction} }

// Is builds a schema validated by an opaque type check.
func Is() *Node { return &Node{Kind: KindIs} }

// Const builds a node that only admits v.
func Const(v value.Value) *Node { return &Node{Kind: KindConst, Value: v} }

// Transform wraps inner with an opaque transform.
func Transform(inner *Node) *Node { return &Node{Kind: KindTransform, Inner: inner} }

// Array builds a sequence schema whose elements follow inner.
func Array(inner *Node) *Node { return &Node{Kind: KindArray, Inner: inner} }

// Dict builds a record schema with arbitrary keys whose values follow inner.
func Dict(inner *Node) *Node { return &Node{Kind: KindDict, Inner: inner} }

// F pairs a field name with its schema for Object.
func F(name string, node *Node) Field { return Field{Name: name, Schema: node} }

// Object builds an object schema; field order is kept as given.
func Object(fields ...Field) *Node {
	return &Node{Kind: KindObject, Fields: append([]Field{}, fields...)}
}

// Intersect builds an intersection of object-like schemas.
func Intersect(list ...*Node) *Node {
	return &Node{Kind: KindIntersect, List: append([]*Node{}, list...)}
}

// Union builds a union of alternative schemas.
func Union(list ...*Node) *Node {
	return &Node{Kind: KindUnion, List: append([]*Node{}, list...)}
}

// Tuple builds a fixed-length sequence schema.
func Tuple(list ...*Node) *Node {
	return &Node{Kind: KindTuple, List: append([]*Node{}, list...)}
}
