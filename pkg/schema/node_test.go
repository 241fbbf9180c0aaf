package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/value"
)

func TestKindFamilies(t *testing.T) {
	want := map[Kind]Family{
		KindString:    FamilyPrimitive,
		KindNumber:    FamilyPrimitive,
		KindBoolean:   FamilyPrimitive,
		KindBitset:    FamilyPrimitive,
		KindConst:     FamilyPrimitive,
		KindFunction:  FamilyDynamic,
		KindTransform: FamilyDynamic,
		KindIs:        FamilyDynamic,
		KindArray:     FamilyComposite,
		KindDict:      FamilyComposite,
		KindObject:    FamilyCombinator,
		KindIntersect: FamilyCombinator,
		KindUnion:     FamilyCombinator,
		KindTuple:     FamilyCombinator,
	}

	if len(Kinds()) != len(want) {
		t.Fatalf("Kinds() returned %d tags, want %d", len(Kinds()), len(want))
	}
	for _, kind := range Kinds() {
		family, ok := want[kind]
		if !ok {
			t.Fatalf("unexpected kind %q", kind)
		}
		if got := kind.Family(); got != family {
			t.Fatalf("%s.Family() = %s, want %s", kind, got, family)
		}
		if !kind.Known() {
			t.Fatalf("%s should be known", kind)
		}
	}

	if Kind("lazy").Known() {
		t.Fatalf("unexpected known kind")
	}
	if Kind("lazy").Family() != FamilyUnknown {
		t.Fatalf("unknown tags should map to FamilyUnknown")
	}
}

func TestObject_KeepsDeclarationOrder(t *testing.T) {
	node := Object(
		F("zeta", String()),
		F("alpha", Number()),
		F("mid", Boolean()),
	)

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, node.FieldNames()); diff != "" {
		t.Fatalf("field order changed (-want +got):\n%s", diff)
	}

	alpha, ok := node.Field("alpha")
	if !ok || alpha.Kind != KindNumber {
		t.Fatalf("expected alpha number field, got %+v (ok=%v)", alpha, ok)
	}
	if _, ok := node.Field("missing"); ok {
		t.Fatalf("unexpected field lookup hit")
	}

	var absent *Node
	if _, ok := absent.Field("x"); ok {
		t.Fatalf("nil node should have no fields")
	}
}

func TestModifiers_ReturnCopies(t *testing.T) {
	base := String()
	titled := base.Description("Name").Default(value.String("ada")).Hidden()

	if base.Meta.Description != "" || base.Meta.Hidden || !base.Meta.Default.IsUndefined() {
		t.Fatalf("modifiers mutated the receiver: %+v", base.Meta)
	}
	if titled.Meta.Description != "Name" || !titled.Meta.Hidden {
		t.Fatalf("unexpected meta: %+v", titled.Meta)
	}
	if s, _ := titled.Meta.Default.AsString(); s != "ada" {
		t.Fatalf("unexpected default %q", s)
	}
}

func TestDocumentFormat(t *testing.T) {
	cases := []struct {
		src  Source
		raw  string
		want Format
	}{
		{SourceFromFile("a/b.json"), "type: string", FormatJSON},
		{SourceFromFile("a/b.yml"), `{"type":"string"}`, FormatYAML},
		{SourceFromFS("schema"), `{"type":"string"}`, FormatJSON},
		{SourceFromFS("schema"), "type: string", FormatYAML},
		{SourceFromURL("https://example.com/s.yaml?v=1"), "{}", FormatYAML},
	}
	for _, tc := range cases {
		doc := MustNewDocument(tc.src, []byte(tc.raw))
		if got := doc.Format(); got != tc.want {
			t.Fatalf("%s: Format() = %s, want %s", tc.src.Location(), got, tc.want)
		}
	}

	if _, err := NewDocument(SourceFromFS("x"), []byte("  \n")); err == nil {
		t.Fatalf("expected error for blank document")
	}
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource("https://example.com/schema.json")
	if err != nil || src.Kind() != SourceKindURL {
		t.Fatalf("expected url source, got %v (%v)", src, err)
	}
	src, err = ParseSource(" ./testdata/../schema.yaml ")
	if err != nil || src.Kind() != SourceKindFile || src.Location() != "schema.yaml" {
		t.Fatalf("expected cleaned file source, got %+v (%v)", src, err)
	}
	if _, err := ParseSource("   "); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
