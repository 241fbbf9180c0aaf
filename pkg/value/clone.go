package value

// Clone returns a deep copy of v that shares no storage with it, so callers
// can mutate the result as live form state.
func Clone(v Value) Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Clone(item)
		}
		return Value{kind: KindSequence, items: items}
	case KindRecord:
		out := Value{
			kind:    KindRecord,
			keys:    append([]string(nil), v.keys...),
			entries: make(map[string]Value, len(v.entries)),
		}
		for key, item := range v.entries {
			out.entries[key] = Clone(item)
		}
		return out
	default:
		return v
	}
}
