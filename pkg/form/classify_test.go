package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

func primitives() []*schema.Node {
	return []*schema.Node{
		schema.String(),
		schema.Number(),
		schema.Boolean(),
		schema.Bitset(),
		schema.Const(value.String("fixed")),
	}
}

func TestPrimitives(t *testing.T) {
	for _, node := range primitives() {
		if IsObjectLike(node) {
			t.Fatalf("%s should not be object-like", node.Kind)
		}
		if !IsValidatable(node) {
			t.Fatalf("%s should be validatable", node.Kind)
		}
		if HasTitle(node, true) || HasTitle(node, false) {
			t.Fatalf("%s should not have a title", node.Kind)
		}
	}
}

func TestIsObjectLike(t *testing.T) {
	obj := schema.Object(schema.F("a", schema.String()))

	cases := []struct {
		name string
		node *schema.Node
		want bool
	}{
		{"object", obj, true},
		{"empty object", schema.Object(), true},
		{"intersect of objects", schema.Intersect(obj, schema.Object()), true},
		{"intersect with string", schema.Intersect(obj, schema.String()), false},
		{"nested intersect", schema.Intersect(obj, schema.Intersect(obj)), true},
		{"union of objects", schema.Union(obj, schema.Object()), true},
		{"union ignores dynamic branches", schema.Union(obj, schema.Function()), true},
		{"union ignores hidden branches", schema.Union(obj, schema.String().Hidden()), true},
		{"union with string", schema.Union(obj, schema.String()), false},
		{"dict", schema.Dict(schema.String()), false},
		{"array of objects", schema.Array(obj), false},
		{"transform of object", schema.Transform(obj), false},
		{"unknown kind", &schema.Node{Kind: "lazy"}, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsObjectLike(tc.node); got != tc.want {
				t.Fatalf("IsObjectLike() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChoices(t *testing.T) {
	obj := schema.Object(schema.F("a", schema.String()))
	str := schema.String()
	num := schema.Number()

	t.Run("drops dynamic branches", func(t *testing.T) {
		got := Choices(schema.Union(obj, schema.Function()))
		if len(got) != 1 || got[0] != obj {
			t.Fatalf("expected only the object branch, got %d choices", len(got))
		}
	})

	t.Run("drops hidden branches", func(t *testing.T) {
		got := Choices(schema.Union(str.Hidden(), num))
		if len(got) != 1 || got[0] != num {
			t.Fatalf("expected only the number branch, got %d choices", len(got))
		}
	})

	t.Run("falls back to transform inners", func(t *testing.T) {
		got := Choices(schema.Union(schema.Transform(str), schema.Is(), schema.Transform(num)))
		if len(got) != 2 || got[0] != str || got[1] != num {
			t.Fatalf("expected transform inners [string number], got %v", kinds(got))
		}
	})

	t.Run("concrete branches win over transform inners", func(t *testing.T) {
		got := Choices(schema.Union(schema.Transform(str), num))
		if len(got) != 1 || got[0] != num {
			t.Fatalf("expected [number], got %v", kinds(got))
		}
	})

	t.Run("hidden transforms contribute nothing", func(t *testing.T) {
		got := Choices(schema.Union(schema.Transform(str).Hidden(), schema.Function()))
		if len(got) != 0 {
			t.Fatalf("expected no choices, got %v", kinds(got))
		}
	})

	t.Run("keeps declaration order", func(t *testing.T) {
		got := Choices(schema.Union(num, schema.Function(), str, obj))
		if diff := cmp.Diff([]schema.Kind{schema.KindNumber, schema.KindString, schema.KindObject}, kinds(got)); diff != "" {
			t.Fatalf("unexpected choices (-want +got):\n%s", diff)
		}
	})

	t.Run("non unions have no choices", func(t *testing.T) {
		if got := Choices(schema.Intersect(obj)); got != nil {
			t.Fatalf("expected nil, got %v", kinds(got))
		}
		if got := Choices(nil); got != nil {
			t.Fatalf("expected nil for absent schema")
		}
	})
}

func TestIsValidatable(t *testing.T) {
	obj := schema.Object(schema.F("a", schema.String()), schema.F("b", schema.Number()))

	cases := []struct {
		name string
		node *schema.Node
		want bool
	}{
		{"nil", nil, true},
		{"object of primitives", obj, true},
		{"object with function field", schema.Object(schema.F("a", schema.String()), schema.F("b", schema.Function())), false},
		{"object with hidden function field", schema.Object(schema.F("a", schema.String()), schema.F("b", schema.Function().Hidden())), true},
		{"nested object", schema.Object(schema.F("inner", obj)), true},
		{"hidden function", schema.Function().Hidden(), true},
		{"function", schema.Function(), false},
		{"transform", schema.Transform(schema.String()), false},
		{"is", schema.Is(), false},
		{"intersect of objects", schema.Intersect(obj, schema.Object()), true},
		{"intersect does not recurse into fields", schema.Intersect(schema.Object(schema.F("f", schema.Function()))), true},
		{"intersect with primitive", schema.Intersect(obj, schema.String()), false},
		{"union of primitives", schema.Union(schema.String(), schema.Number()), true},
		{"union with single choice", schema.Union(schema.Array(schema.Function()), schema.Function()), true},
		{"union with invalid choice", schema.Union(schema.String(), schema.Array(schema.Function())), false},
		{"empty union", schema.Union(), true},
		{"array of strings", schema.Array(schema.String()), true},
		{"array of functions", schema.Array(schema.Function()), false},
		{"dict of objects", schema.Dict(obj), true},
		{"dict of transforms", schema.Dict(schema.Transform(schema.String())), false},
		{"tuple of primitives", schema.Tuple(schema.String(), schema.Number(), schema.Const(value.Null())), true},
		{"tuple with object", schema.Tuple(schema.String(), obj), false},
		{"tuple with array", schema.Tuple(schema.Array(schema.String())), false},
		{"empty tuple", schema.Tuple(), true},
		{"unknown kind", &schema.Node{Kind: "lazy"}, false},
		{"hidden unknown kind", (&schema.Node{Kind: "lazy"}).Hidden(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidatable(tc.node); got != tc.want {
				t.Fatalf("IsValidatable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasTitle(t *testing.T) {
	titled := schema.String().Description("Name")
	plain := schema.String()
	titledObj := schema.Object(schema.F("a", plain)).Description("Account")

	cases := []struct {
		name   string
		node   *schema.Node
		isRoot bool
		want   bool
	}{
		{"nil", nil, false, true},
		{"object with zero fields", schema.Object(), false, true},
		{"object with description", titledObj, false, true},
		{"object looks at first field", schema.Object(schema.F("a", titledObj), schema.F("b", plain)), false, true},
		{"object ignores later fields", schema.Object(schema.F("a", plain), schema.F("b", titledObj)), false, false},
		{"object with empty first object field", schema.Object(schema.F("a", schema.Object())), false, true},
		{"intersect delegates to first child", schema.Intersect(titledObj, schema.Object(schema.F("x", plain))), false, true},
		{"intersect ignores second child", schema.Intersect(schema.Object(schema.F("x", plain)), titledObj), false, false},
		{"empty intersect", schema.Intersect(), false, true},
		{"union with single choice", schema.Union(titledObj, schema.Function()), false, true},
		{"union with single untitled choice", schema.Union(schema.Object(schema.F("x", plain)), schema.Function()), false, false},
		{"union with many choices", schema.Union(titledObj, schema.Object()), false, false},
		{"union without choices", schema.Union(schema.Function()), false, false},
		{"array at root", schema.Array(plain), true, true},
		{"array below root", schema.Array(plain), false, false},
		{"dict at root", schema.Dict(plain), true, true},
		{"root array of functions", schema.Array(schema.Function()), true, false},
		{"primitive with description", titled, true, false},
		{"tuple", schema.Tuple(plain), true, false},
		{"unknown kind", &schema.Node{Kind: "lazy"}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasTitle(tc.node, tc.isRoot); got != tc.want {
				t.Fatalf("HasTitle(isRoot=%v) = %v, want %v", tc.isRoot, got, tc.want)
			}
		})
	}
}

func TestHasTitle_NestedArraysAreNotRoot(t *testing.T) {
	// the first field is an array, which only titles itself at the root
	node := schema.Object(schema.F("items", schema.Array(schema.String())))
	if HasTitle(node, true) {
		t.Fatalf("root flag must not propagate into fields")
	}
}

func TestPredicates_CoverEveryKind(t *testing.T) {
	build := func(kind schema.Kind) *schema.Node {
		node := &schema.Node{Kind: kind}
		if kind.HasInner() {
			node.Inner = schema.String()
		}
		if kind.HasList() {
			node.List = []*schema.Node{schema.Object()}
		}
		return node
	}

	objectLike := map[schema.Kind]bool{
		schema.KindObject: true, schema.KindIntersect: true, schema.KindUnion: true,
	}
	validatable := map[schema.Kind]bool{
		schema.KindString: true, schema.KindNumber: true, schema.KindBoolean: true,
		schema.KindBitset: true, schema.KindConst: true,
		schema.KindArray: true, schema.KindDict: true,
		schema.KindObject: true, schema.KindIntersect: true, schema.KindUnion: true,
	}
	rootTitled := map[schema.Kind]bool{
		schema.KindArray: true, schema.KindDict: true,
		schema.KindObject: true, schema.KindIntersect: true, schema.KindUnion: true,
	}
	inferred := map[schema.Kind]bool{
		schema.KindString: true, schema.KindNumber: true, schema.KindBoolean: true,
		schema.KindDict: true, schema.KindObject: true, schema.KindIntersect: true,
	}

	for _, kind := range schema.Kinds() {
		node := build(kind)
		if got := IsObjectLike(node); got != objectLike[kind] {
			t.Fatalf("IsObjectLike(%s) = %v", kind, got)
		}
		if got := IsValidatable(node); got != validatable[kind] {
			t.Fatalf("IsValidatable(%s) = %v", kind, got)
		}
		if got := HasTitle(node, true); got != rootTitled[kind] {
			t.Fatalf("HasTitle(%s, root) = %v", kind, got)
		}
		if got := !InferFallback(node).IsUndefined(); got != inferred[kind] {
			t.Fatalf("InferFallback(%s) defined = %v", kind, got)
		}
	}
}

func kinds(nodes []*schema.Node) []schema.Kind {
	out := make([]schema.Kind, len(nodes))
	for i, node := range nodes {
		out[i] = node.Kind
	}
	return out
}
