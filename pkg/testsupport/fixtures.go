package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/schemafile"
	"github.com/goliatone/go-formschema/pkg/value"
)

// LoadSchema decodes a schema fixture from disk. Fixtures are small, so the
// helper fails the test on any error to keep callers concise.
func LoadSchema(t *testing.T, path string) *schema.Node {
	t.Helper()

	node, err := schemafile.New(schemafile.WithStrictKinds(true)).Load(Context(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load schema %s: %v", path, err)
	}
	return node
}

// ValueComparer lets cmp compare value.Value with structural equality.
func ValueComparer() cmp.Option {
	return cmp.Comparer(value.Equal)
}

// CompareGolden returns a diff string if the values differ. value.Value
// fields are compared structurally.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got, ValueComparer())
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
