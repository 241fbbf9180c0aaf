package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/value"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func writeValue(w io.Writer, format string, v value.Value) error {
	var (
		out []byte
		err error
	)
	switch format {
	case formatYAML:
		out, err = yaml.Marshal(v)
	default:
		out, err = v.MarshalJSON()
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	_, err = w.Write(out)
	return err
}
