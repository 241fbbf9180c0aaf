package openapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

// DefaultOrderExtension is the property extension used to order object
// fields, since OpenAPI property maps carry no order.
const DefaultOrderExtension = "x-order"

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func defaultSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Option configures a Converter.
type Option func(*Converter)

// WithSanitizer overrides the policy applied to titles and descriptions.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(c *Converter) {
		if policy != nil {
			c.policy = policy
		}
	}
}

// WithOrderExtension changes the extension consulted for field order.
func WithOrderExtension(name string) Option {
	return func(c *Converter) {
		c.orderKey = strings.TrimSpace(name)
	}
}

// Converter turns kin-openapi schemas into schema trees.
type Converter struct {
	policy   *bluemonday.Policy
	orderKey string
}

// NewConverter constructs a Converter with a strict sanitiser and the
// x-order field extension.
func NewConverter(options ...Option) *Converter {
	c := &Converter{
		policy:   defaultSanitizer(),
		orderKey: DefaultOrderExtension,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Convert maps ref onto a schema tree:
//
//	oneOf / anyOf           union
//	allOf                   intersect
//	enum                    const, or a union of consts
//	string/number/integer   string/number
//	boolean                 boolean
//	array                   array of items
//	object + properties     object
//	object + additional     dict
//	anything else           is
//
// Recursive references are cut with an `is` node so the result stays
// acyclic. A nil ref yields nil.
func (c *Converter) Convert(ref *openapi3.SchemaRef) *schema.Node {
	if ref == nil {
		return nil
	}
	w := walk{conv: c, active: make(map[*openapi3.Schema]bool)}
	return w.convert(ref)
}

type walk struct {
	conv   *Converter
	active map[*openapi3.Schema]bool
}

func (w walk) convert(ref *openapi3.SchemaRef) *schema.Node {
	if ref == nil || ref.Value == nil {
		return schema.Is()
	}
	src := ref.Value
	if w.active[src] {
		return schema.Is()
	}
	w.active[src] = true
	defer delete(w.active, src)

	node := w.shape(src)
	w.applyMeta(node, src)
	return node
}

func (w walk) shape(src *openapi3.Schema) *schema.Node {
	if alternatives := append(append(openapi3.SchemaRefs{}, src.OneOf...), src.AnyOf...); len(alternatives) > 0 {
		return schema.Union(w.list(alternatives)...)
	}
	if len(src.AllOf) > 0 {
		return schema.Intersect(w.list(src.AllOf)...)
	}
	if len(src.Enum) > 0 {
		return enumNode(src.Enum)
	}

	types := schemaTypes(src)
	switch len(types) {
	case 0:
		if len(src.Properties) > 0 || src.AdditionalProperties.Schema != nil {
			return w.object(src)
		}
		return schema.Is()
	case 1:
		return w.typed(types[0], src)
	default:
		variants := make([]*schema.Node, 0, len(types))
		for _, typ := range types {
			variants = append(variants, w.typed(typ, src))
		}
		return schema.Union(variants...)
	}
}

func (w walk) typed(typ string, src *openapi3.Schema) *schema.Node {
	switch typ {
	case openapi3.TypeString:
		return schema.String()
	case openapi3.TypeNumber, openapi3.TypeInteger:
		return schema.Number()
	case openapi3.TypeBoolean:
		return schema.Boolean()
	case openapi3.TypeArray:
		return schema.Array(w.convert(src.Items))
	case openapi3.TypeObject:
		return w.object(src)
	default:
		return schema.Is()
	}
}

func (w walk) object(src *openapi3.Schema) *schema.Node {
	if len(src.Properties) == 0 && src.AdditionalProperties.Schema != nil {
		return schema.Dict(w.convert(src.AdditionalProperties.Schema))
	}

	names := w.conv.orderedProperties(src.Properties)
	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, schema.F(name, w.convert(src.Properties[name])))
	}
	return schema.Object(fields...)
}

func (w walk) list(refs openapi3.SchemaRefs) []*schema.Node {
	out := make([]*schema.Node, 0, len(refs))
	for _, ref := range refs {
		out = append(out, w.convert(ref))
	}
	return out
}

func (w walk) applyMeta(node *schema.Node, src *openapi3.Schema) {
	title := w.conv.sanitize(src.Title)
	if title == "" {
		title = w.conv.sanitize(src.Description)
	}
	node.Meta.Description = title
	node.Meta.Hidden = src.ReadOnly
	if src.Default != nil {
		if def, err := value.FromAny(src.Default); err == nil {
			node.Meta.Default = def
		}
	}
}

func (c *Converter) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(c.policy.Sanitize(trimmed))
}

// orderedProperties sorts property names by the order extension, then by
// name. Properties without the extension come after ordered ones.
func (c *Converter) orderedProperties(props openapi3.Schemas) []string {
	type entry struct {
		name    string
		order   float64
		ordered bool
	}

	entries := make([]entry, 0, len(props))
	for name, ref := range props {
		e := entry{name: name}
		if c.orderKey != "" && ref != nil && ref.Value != nil {
			if raw, ok := ref.Value.Extensions[c.orderKey]; ok {
				if v, err := value.FromAny(raw); err == nil {
					e.order, e.ordered = v.AsNumber()
				}
			}
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ordered != b.ordered {
			return a.ordered
		}
		if a.ordered && a.order != b.order {
			return a.order < b.order
		}
		return a.name < b.name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func enumNode(enum []any) *schema.Node {
	consts := make([]*schema.Node, 0, len(enum))
	for _, item := range enum {
		v, err := value.FromAny(item)
		if err != nil {
			continue
		}
		consts = append(consts, schema.Const(v))
	}
	switch len(consts) {
	case 0:
		return schema.Is()
	case 1:
		return consts[0]
	default:
		return schema.Union(consts...)
	}
}

// schemaTypes lists declared types, ignoring "null" since a nullable field
// renders the same as its non-null shape.
func schemaTypes(src *openapi3.Schema) []string {
	if src.Type == nil {
		return nil
	}
	var out []string
	for _, typ := range src.Type.Slice() {
		if typ == "null" || typ == "" {
			continue
		}
		out = append(out, typ)
	}
	return out
}
