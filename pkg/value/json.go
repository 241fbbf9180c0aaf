package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes v keeping record key order. Undefined record entries
// are omitted, undefined sequence items and a top-level undefined encode as
// null.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindUndefined, KindNull:
		buf.WriteString("null")
		return nil
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case KindNumber:
		return writeJSON(buf, v.number)
	case KindString:
		return writeJSON(buf, v.text)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindRecord:
		buf.WriteByte('{')
		first := true
		for _, key := range v.keys {
			item := v.entries[key]
			if item.IsUndefined() {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("value: cannot encode kind %s", v.kind)
	}
}

func writeJSON(buf *bytes.Buffer, x any) error {
	raw, err := json.Marshal(x)
	if err != nil {
		return fmt.Errorf("value: encode: %w", err)
	}
	buf.Write(raw)
	return nil
}

// UnmarshalJSON decodes a JSON document into v, keeping object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// ParseJSON decodes a single JSON document. Trailing data is an error.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	out, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("value: trailing data after JSON document")
	}
	return out, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("value: unexpected end of JSON input")
		}
		return Value{}, fmt.Errorf("value: decode: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeRecord(dec)
		case '[':
			return decodeSequence(dec)
		default:
			return Value{}, fmt.Errorf("value: unexpected delimiter %q", rune(t))
		}
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return FromAny(t)
	case float64:
		return Number(t), nil
	default:
		return Value{}, fmt.Errorf("value: unexpected token %T", tok)
	}
}

func decodeRecord(dec *json.Decoder) (Value, error) {
	out := EmptyRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("value: decode key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("value: expected object key, got %T", tok)
		}
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("value: key %q: %w", key, err)
		}
		out = out.Set(key, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("value: close object: %w", err)
	}
	return out, nil
}

func decodeSequence(dec *json.Decoder) (Value, error) {
	out := Value{kind: KindSequence, items: []Value{}}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("value: index %d: %w", len(out.items), err)
		}
		out.items = append(out.items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("value: close array: %w", err)
	}
	return out, nil
}
