package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/pkg/openapi"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/schemafile"
	"github.com/goliatone/go-formschema/pkg/value"
)

func (o *rootOptions) loader() *loader.Loader {
	return loader.New(loader.Options{
		AllowHTTP:      true,
		RequestTimeout: o.timeout,
	})
}

func (o *rootOptions) document(ctx context.Context, raw string) (schema.Document, error) {
	src, err := schema.ParseSource(raw)
	if err != nil {
		return schema.Document{}, err
	}
	return o.loader().Load(ctx, src)
}

// loadSchema reads a schema file, or an OpenAPI component when the document
// is an OpenAPI description.
func (o *rootOptions) loadSchema(ctx context.Context, raw string) (*schema.Node, error) {
	doc, err := o.document(ctx, raw)
	if err != nil {
		return nil, err
	}

	if o.component == "" && openapi.Detect(doc.Raw()) {
		names, err := openapi.ComponentNames(ctx, doc)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s is an OpenAPI document; pick a schema with --openapi-component (one of: %s)", doc.Location(), strings.Join(names, ", "))
	}
	if o.component != "" {
		return openapi.NewConverter().LoadComponent(ctx, doc, o.component)
	}
	return schemafile.New(schemafile.WithStrictKinds(o.strict)).Decode(doc)
}

// loadValue reads a JSON or YAML data file.
func (o *rootOptions) loadValue(ctx context.Context, raw string) (value.Value, error) {
	doc, err := o.document(ctx, raw)
	if err != nil {
		return value.Undefined(), err
	}

	var v value.Value
	switch doc.Format() {
	case schema.FormatYAML:
		v, err = value.ParseYAML(doc.Raw())
	default:
		v, err = value.ParseJSON(doc.Raw())
	}
	if err != nil {
		return value.Undefined(), fmt.Errorf("%s: %w", doc.Location(), err)
	}
	return v, nil
}
