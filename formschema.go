// Package formschema exposes the structural helpers renderers use to turn a
// schema tree into an editable form. The functions are re-exported from
// pkg/form and pkg/value so callers can start from a single import.
package formschema

import (
	"github.com/goliatone/go-formschema/pkg/form"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

// Node aliases schema.Node.
type Node = schema.Node

// Value aliases value.Value.
type Value = value.Value

// IsObjectLike reports whether n renders as a single object form.
func IsObjectLike(n *Node) bool { return form.IsObjectLike(n) }

// Choices lists the presentable alternatives of a union.
func Choices(n *Node) []*Node { return form.Choices(n) }

// IsValidatable reports whether the generic form engine can render n.
func IsValidatable(n *Node) bool { return form.IsValidatable(n) }

// HasTitle reports whether n carries its own title.
func HasTitle(n *Node, isRoot bool) bool { return form.HasTitle(n, isRoot) }

// InferFallback returns the structural empty value for n.
func InferFallback(n *Node) Value { return form.InferFallback(n) }

// GetFallback returns the initial value for a field described by n.
func GetFallback(n *Node, required bool) Value { return form.GetFallback(n, required) }

// DeepEqual reports whether a and b are structurally equal. Renderers use it
// to tell whether a form value still matches its fallback.
func DeepEqual(a, b Value) bool { return value.Equal(a, b) }
