package schemafile

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

var (
	// ErrUnknownKind is returned in strict mode for tags outside the fixed set.
	ErrUnknownKind = errors.New("unknown schema kind")
	// ErrInvalidNode reports a node that does not match its kind's shape.
	ErrInvalidNode = errors.New("invalid schema node")
)

const (
	keyType        = "type"
	keyHidden      = "hidden"
	keyDescription = "description"
	keyDefault     = "default"
	keyValue       = "value"
	keyInner       = "inner"
	keyList        = "list"
	keyFields      = "fields"
)

var knownKeys = map[string]struct{}{
	keyType: {}, keyHidden: {}, keyDescription: {}, keyDefault: {},
	keyValue: {}, keyInner: {}, keyList: {}, keyFields: {},
}

// Decode parses a schema document in the given format. Unknown kinds are
// kept as-is so the form helpers can treat them conservatively.
func Decode(data []byte, format schema.Format) (*schema.Node, error) {
	return decode(data, format, false)
}

func decode(data []byte, format schema.Format, strict bool) (*schema.Node, error) {
	raw, err := parse(data, format)
	if err != nil {
		return nil, err
	}
	b := builder{strict: strict}
	return b.node(raw, "$")
}

func parse(data []byte, format schema.Format) (value.Value, error) {
	switch format {
	case schema.FormatJSON:
		raw, err := value.ParseJSON(data)
		if err != nil {
			return value.Value{}, fmt.Errorf("schemafile: parse json: %w", err)
		}
		return raw, nil
	case schema.FormatYAML, "":
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return value.Value{}, fmt.Errorf("schemafile: parse yaml: %w", err)
		}
		raw, err := value.FromYAML(&doc)
		if err != nil {
			return value.Value{}, fmt.Errorf("schemafile: parse yaml: %w", err)
		}
		return raw, nil
	default:
		return value.Value{}, fmt.Errorf("schemafile: unsupported format %q", format)
	}
}

type builder struct {
	strict bool
}

func (b builder) node(raw value.Value, path string) (*schema.Node, error) {
	// "name: string" is shorthand for {type: string}
	if tag, ok := raw.AsString(); ok {
		return b.node(value.Record(value.Entry(keyType, value.String(tag))), path)
	}
	if raw.Kind() != value.KindRecord {
		return nil, invalid(path, "expected a mapping or a kind name, got %s", raw.Kind())
	}

	tagValue, _ := raw.Get(keyType)
	tag, ok := tagValue.AsString()
	if !ok || tag == "" {
		return nil, invalid(path, "missing %q", keyType)
	}
	kind := schema.Kind(tag)
	if !kind.Known() && b.strict {
		return nil, fmt.Errorf("schemafile: %s: %w %q", path, ErrUnknownKind, tag)
	}
	if b.strict {
		for _, key := range raw.Keys() {
			if _, ok := knownKeys[key]; !ok {
				return nil, invalid(path, "unexpected key %q", key)
			}
		}
	}

	n := &schema.Node{Kind: kind}
	if err := b.meta(n, raw, path); err != nil {
		return nil, err
	}

	switch {
	case kind.HasInner():
		inner, ok := raw.Get(keyInner)
		if !ok {
			return nil, invalid(path, "%s requires %q", kind, keyInner)
		}
		child, err := b.node(inner, path+"."+keyInner)
		if err != nil {
			return nil, err
		}
		n.Inner = child
	case kind.HasList():
		list, ok := raw.Get(keyList)
		if !ok {
			return nil, invalid(path, "%s requires %q", kind, keyList)
		}
		if list.Kind() != value.KindSequence {
			return nil, invalid(path, "%q must be a sequence", keyList)
		}
		n.List = make([]*schema.Node, 0, list.Len())
		for i, item := range list.Items() {
			child, err := b.node(item, path+"."+keyList+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			n.List = append(n.List, child)
		}
	case kind == schema.KindObject:
		fields, ok := raw.Get(keyFields)
		if !ok || fields.IsNullish() {
			n.Fields = []schema.Field{}
			break
		}
		if fields.Kind() != value.KindRecord {
			return nil, invalid(path, "%q must be a mapping", keyFields)
		}
		n.Fields = make([]schema.Field, 0, fields.Len())
		for _, name := range fields.Keys() {
			item, _ := fields.Get(name)
			child, err := b.node(item, path+"."+keyFields+"."+name)
			if err != nil {
				return nil, err
			}
			n.Fields = append(n.Fields, schema.F(name, child))
		}
	case kind == schema.KindConst:
		if v, ok := raw.Get(keyValue); ok {
			n.Value = v
		}
	}

	return n, nil
}

func (b builder) meta(n *schema.Node, raw value.Value, path string) error {
	if hidden, ok := raw.Get(keyHidden); ok && !hidden.IsNullish() {
		flag, isBool := hidden.AsBool()
		if !isBool {
			return invalid(path, "%q must be a boolean", keyHidden)
		}
		n.Meta.Hidden = flag
	}
	if desc, ok := raw.Get(keyDescription); ok && !desc.IsNullish() {
		text, isString := desc.AsString()
		if !isString {
			return invalid(path, "%q must be a string", keyDescription)
		}
		n.Meta.Description = text
	}
	if def, ok := raw.Get(keyDefault); ok {
		n.Meta.Default = def
	}
	return nil
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("schemafile: %s: %w: %s", path, ErrInvalidNode, fmt.Sprintf(format, args...))
}
