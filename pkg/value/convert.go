package value

import (
	"encoding"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// FromAny converts decoded Go data into a Value. Maps are converted with
// their keys sorted since Go maps carry no order; use UnmarshalJSON or the
// schemafile decoder when source order matters. Unsupported types produce
// an error naming the offending type.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return Clone(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value: number %q: %w", v, err)
		}
		return Number(f), nil
	case []any:
		out := Value{kind: KindSequence, items: make([]Value, 0, len(v))}
		for i, item := range v {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("value: index %d: %w", i, err)
			}
			out.items = append(out.items, converted)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := EmptyRecord()
		for _, key := range keys {
			converted, err := FromAny(v[key])
			if err != nil {
				return Value{}, fmt.Errorf("value: key %q: %w", key, err)
			}
			out = out.Set(key, converted)
		}
		return out, nil
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return Value{}, fmt.Errorf("value: marshal text: %w", err)
		}
		return String(string(text)), nil
	default:
		return Value{}, fmt.Errorf("value: unsupported type %T", x)
	}
}

// MustFromAny is FromAny for literals known to be convertible. It panics on
// error and is intended for tests and package-level fixtures.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

// ToAny converts v into plain Go data: nil, bool, float64, string, []any and
// map[string]any. Undefined record entries are dropped and undefined
// sequence items become nil.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number
	case KindString:
		return v.text
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = ToAny(item)
		}
		return out
	case KindRecord:
		out := make(map[string]any, len(v.keys))
		for _, key := range v.keys {
			item := v.entries[key]
			if item.IsUndefined() {
				continue
			}
			out[key] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}
