package value

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a decoded yaml.Node into a Value, keeping mapping key
// order.
func FromYAML(node *yaml.Node) (Value, error) {
	if node == nil {
		return Value{}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Value{}, nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.SequenceNode:
		out := Value{kind: KindSequence, items: make([]Value, 0, len(node.Content))}
		for i, child := range node.Content {
			item, err := FromYAML(child)
			if err != nil {
				return Value{}, fmt.Errorf("value: index %d: %w", i, err)
			}
			out.items = append(out.items, item)
		}
		return out, nil
	case yaml.MappingNode:
		out := EmptyRecord()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			item, err := FromYAML(node.Content[i+1])
			if err != nil {
				return Value{}, fmt.Errorf("value: key %q: %w", key, err)
			}
			out = out.Set(key, item)
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	default:
		return Value{}, fmt.Errorf("value: unsupported yaml node kind %d (line %d)", node.Kind, node.Line)
	}
}

// ParseYAML decodes a single YAML document into a Value.
func ParseYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, fmt.Errorf("value: parse yaml: %w", err)
	}
	return FromYAML(&node)
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("value: line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("value: line %d: %w", node.Line, err)
		}
		return Number(f), nil
	default:
		return String(node.Value), nil
	}
}

// MarshalYAML renders v as a yaml.Node so record key order survives
// encoding. Undefined record entries are omitted.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.boolean)}
	case KindNumber:
		if v.number == math.Trunc(v.number) && math.Abs(v.number) < 1e15 {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatFloat(v.number, 'f', -1, 64)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v.number, 'g', -1, 64)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
	case KindSequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			node.Content = append(node.Content, item.yamlNode())
		}
		return node
	case KindRecord:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.keys {
			item := v.entries[key]
			if item.IsUndefined() {
				continue
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				item.yamlNode(),
			)
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
