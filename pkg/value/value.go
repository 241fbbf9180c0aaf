package value

// Kind enumerates the shapes a Value can take.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindRecord
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Value is a plain data value: a scalar, an ordered sequence, or a record
// whose keys keep insertion order. The zero Value is undefined.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	text    string
	items   []Value
	keys    []string
	entries map[string]Value
}

// KeyValue is a single record entry used by Record.
type KeyValue struct {
	Key   string
	Value Value
}

// Undefined returns the absent value.
func Undefined() Value { return Value{} }

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Sequence builds an ordered sequence. The items slice is copied.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: append([]Value{}, items...)}
}

// Entry is shorthand for a KeyValue literal.
func Entry(key string, v Value) KeyValue {
	return KeyValue{Key: key, Value: v}
}

// Record builds a record from entries in order. Repeated keys keep their
// first position and take the last value.
func Record(entries ...KeyValue) Value {
	out := EmptyRecord()
	for _, entry := range entries {
		out = out.Set(entry.Key, entry.Value)
	}
	return out
}

// EmptyRecord returns a record with no keys.
func EmptyRecord() Value {
	return Value{kind: KindRecord, entries: make(map[string]Value)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the absent value.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNullish reports whether v is undefined or null.
func (v Value) IsNullish() bool { return v.kind == KindUndefined || v.kind == KindNull }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsNumber returns the numeric payload and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.number, v.kind == KindNumber }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.text, v.kind == KindString }

// Items returns the elements of a sequence. The slice is shared with v.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Keys returns the record keys in insertion order. The slice is shared with v.
func (v Value) Keys() []string {
	if v.kind != KindRecord {
		return nil
	}
	return v.keys
}

// Get looks up a record key. Missing keys and non-records yield undefined.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindRecord {
		return Value{}, false
	}
	out, ok := v.entries[key]
	return out, ok
}

// Len returns the number of sequence items or record keys.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindRecord:
		return len(v.keys)
	default:
		return 0
	}
}

// Set stores key on a record and returns it. Setting on a non-record turns
// the receiver into a fresh record. The returned value shares storage with
// v, so only call Set on values the caller owns (for example a Clone).
func (v Value) Set(key string, item Value) Value {
	if v.kind != KindRecord {
		v = EmptyRecord()
	}
	if v.entries == nil {
		v.entries = make(map[string]Value)
	}
	if _, exists := v.entries[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.entries[key] = item
	return v
}

// Append adds an item to a sequence and returns it. Appending to a
// non-sequence starts a new sequence.
func (v Value) Append(item Value) Value {
	if v.kind != KindSequence {
		v = Value{kind: KindSequence}
	}
	v.items = append(v.items, item)
	return v
}
