package value

// Equal reports whether a and b are structurally equal.
//
// Scalars are equal when they share a kind and payload; numbers use ==, so
// NaN never equals itself. Sequences compare index by index and must have the
// same length. Records compare over the union of both key sets, where a key
// missing on one side compares as undefined: {a:1} equals {a:1, b:undefined}.
// A sequence never equals a record and null never equals a composite.
//
// Inputs must be acyclic; Equal recurses without cycle detection.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.number == b.number
	case KindString:
		return a.text == b.text
	case KindSequence:
		return equalSequences(a.items, b.items)
	case KindRecord:
		return equalRecords(a, b)
	default:
		return false
	}
}

func equalSequences(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalRecords(a, b Value) bool {
	for _, key := range a.keys {
		other, _ := b.Get(key)
		if !Equal(a.entries[key], other) {
			return false
		}
	}
	for _, key := range b.keys {
		if _, seen := a.entries[key]; seen {
			continue
		}
		if !Equal(Value{}, b.entries[key]) {
			return false
		}
	}
	return true
}
