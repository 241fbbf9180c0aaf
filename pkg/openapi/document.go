package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// ErrComponentNotFound is returned when a requested component schema is
// missing from the document.
var ErrComponentNotFound = errors.New("openapi: component schema not found")

// Detect reports whether raw looks like an OpenAPI or Swagger document.
func Detect(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			_, isOpenAPI := payload["openapi"]
			_, isSwagger := payload["swagger"]
			return isOpenAPI || isSwagger
		}
	}
	lower := strings.ToLower(string(trimmed))
	return strings.HasPrefix(lower, "openapi:") || strings.Contains(lower, "\nopenapi:") ||
		strings.HasPrefix(lower, "swagger:") || strings.Contains(lower, "\nswagger:")
}

// Components parses doc and returns its component schemas, resolving local
// references.
func Components(ctx context.Context, doc schema.Document) (openapi3.Schemas, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", doc.Location(), err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, nil
	}
	return spec.Components.Schemas, nil
}

// ComponentNames lists component schema names in sorted order.
func ComponentNames(ctx context.Context, doc schema.Document) ([]string, error) {
	schemas, err := Components(ctx, doc)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LoadComponent converts components.schemas.<name> of doc into a schema
// tree.
func (c *Converter) LoadComponent(ctx context.Context, doc schema.Document, name string) (*schema.Node, error) {
	schemas, err := Components(ctx, doc)
	if err != nil {
		return nil, err
	}
	ref, ok := schemas[name]
	if !ok || ref == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return c.Convert(ref), nil
}
