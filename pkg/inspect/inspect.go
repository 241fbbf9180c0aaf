package inspect

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formschema/pkg/form"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

// Entry records how the form layer classifies one node.
type Entry struct {
	Path        string      `json:"path" yaml:"path"`
	Kind        schema.Kind `json:"kind" yaml:"kind"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool        `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	ObjectLike  bool        `json:"objectLike" yaml:"objectLike"`
	Validatable bool        `json:"validatable" yaml:"validatable"`
	HasTitle    bool        `json:"hasTitle" yaml:"hasTitle"`
	Choices     int         `json:"choices,omitempty" yaml:"choices,omitempty"`
	Fallback    value.Value `json:"fallback" yaml:"fallback"`
}

// Report lists the entries of a tree in depth-first order.
type Report struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Inspect classifies root and every node reachable from it. Child paths
// extend the parent path with:
//
//	.name   object field
//	[]      array item
//	{}      dict value
//	[i]     tuple element
//	|i      union member
//	&i      intersect member
//	>       transform inner
//
// Fallbacks are computed as if the node were required.
func Inspect(root *schema.Node) Report {
	var report Report
	if root == nil {
		return report
	}
	walk(&report, root, "$", true)
	return report
}

func walk(report *Report, n *schema.Node, path string, isRoot bool) {
	entry := Entry{
		Path:        path,
		Kind:        n.Kind,
		Description: n.Meta.Description,
		Hidden:      n.Meta.Hidden,
		ObjectLike:  form.IsObjectLike(n),
		Validatable: form.IsValidatable(n),
		HasTitle:    form.HasTitle(n, isRoot),
		Fallback:    form.GetFallback(n, true),
	}
	if n.Kind == schema.KindUnion {
		entry.Choices = len(form.Choices(n))
	}
	report.Entries = append(report.Entries, entry)

	switch {
	case n.Kind == schema.KindObject:
		for _, field := range n.Fields {
			if field.Schema != nil {
				walk(report, field.Schema, path+"."+field.Name, false)
			}
		}
	case n.Kind.HasInner():
		if n.Inner != nil {
			walk(report, n.Inner, path+innerSuffix(n.Kind), false)
		}
	case n.Kind.HasList():
		for i, item := range n.List {
			if item != nil {
				walk(report, item, fmt.Sprintf("%s%s%d", path, listSeparator(n.Kind), i), false)
			}
		}
	}
}

func innerSuffix(kind schema.Kind) string {
	switch kind {
	case schema.KindArray:
		return "[]"
	case schema.KindDict:
		return "{}"
	default:
		return ">"
	}
}

func listSeparator(kind schema.Kind) string {
	switch kind {
	case schema.KindUnion:
		return "|"
	case schema.KindIntersect:
		return "&"
	default:
		return ""
	}
}

// Unsupported lists the paths of nodes the form layer cannot render. A
// container is listed along with the offending descendants.
func (r Report) Unsupported() []string {
	var out []string
	for _, entry := range r.Entries {
		if !entry.Validatable {
			out = append(out, entry.Path)
		}
	}
	return out
}

// Entry returns the entry recorded for path.
func (r Report) Entry(path string) (Entry, bool) {
	for _, entry := range r.Entries {
		if entry.Path == path {
			return entry, true
		}
	}
	return Entry{}, false
}

type document struct {
	Entries     []Entry  `json:"entries" yaml:"entries"`
	Unsupported []string `json:"unsupported" yaml:"unsupported"`
}

func (r Report) document() document {
	unsupported := r.Unsupported()
	if unsupported == nil {
		unsupported = []string{}
	}
	return document{Entries: r.Entries, Unsupported: unsupported}
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	payload, err := json.MarshalIndent(r.document(), "", "  ")
	if err != nil {
		return fmt.Errorf("inspect: encode json: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("inspect: write json: %w", err)
	}
	return nil
}

// WriteYAML writes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.document()); err != nil {
		return fmt.Errorf("inspect: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("inspect: encode yaml: %w", err)
	}
	return nil
}
