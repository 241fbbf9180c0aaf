package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-formschema/pkg/form"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/value"
)

// Collector asks a Driver for a value matching a schema tree.
type Collector struct {
	driver Driver
	theme  Theme
}

// New constructs a Collector. The survey driver is used unless
// WithPromptDriver supplies another.
func New(options ...Option) *Collector {
	c := &Collector{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver(nil)
	}
	return c
}

// Collect walks root and returns the value entered for it. Hidden nodes are
// not asked and keep their authored default, if any. Subtrees the form layer
// cannot render keep their fallback.
func (c *Collector) Collect(ctx context.Context, root *schema.Node) (value.Value, error) {
	if ctx == nil {
		return value.Undefined(), errors.New("prompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return value.Undefined(), err
	}
	if c.driver == nil {
		return value.Undefined(), ErrNoDriver
	}
	return c.collect(ctx, root, "$")
}

func (c *Collector) collect(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	if n == nil {
		return value.Undefined(), nil
	}
	if n.Meta.Hidden {
		return form.GetFallback(n, false), nil
	}
	if !form.IsValidatable(n) {
		if err := c.info(ctx, "%s: %s cannot be edited here, keeping its fallback", path, n.Kind); err != nil {
			return value.Undefined(), err
		}
		return form.GetFallback(n, true), nil
	}

	switch n.Kind {
	case schema.KindString:
		return c.promptString(ctx, n, path)
	case schema.KindNumber, schema.KindBitset:
		return c.promptNumber(ctx, n, path)
	case schema.KindBoolean:
		return c.promptBoolean(ctx, n, path)
	case schema.KindConst:
		return value.Clone(n.Value), nil
	case schema.KindObject:
		return c.promptObject(ctx, n, path)
	case schema.KindIntersect:
		return c.promptIntersect(ctx, n, path)
	case schema.KindUnion:
		return c.promptUnion(ctx, n, path)
	case schema.KindArray:
		return c.promptArray(ctx, n, path)
	case schema.KindDict:
		return c.promptDict(ctx, n, path)
	case schema.KindTuple:
		return c.promptTuple(ctx, n, path)
	default:
		return form.GetFallback(n, true), nil
	}
}

func (c *Collector) promptString(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	def, _ := form.GetFallback(n, true).AsString()
	input, err := c.driver.Input(ctx, InputConfig{
		Message: c.label(n, path),
		Default: def,
	})
	if err != nil {
		return value.Undefined(), err
	}
	return value.String(input), nil
}

func (c *Collector) promptNumber(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	defaultStr := ""
	if def, ok := form.GetFallback(n, true).AsNumber(); ok {
		defaultStr = strconv.FormatFloat(def, 'f', -1, 64)
	}

	for {
		input, err := c.driver.Input(ctx, InputConfig{
			Message: c.label(n, path),
			Default: defaultStr,
		})
		if err != nil {
			return value.Undefined(), err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			trimmed = defaultStr
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			if err := c.info(ctx, "Invalid %s: %q is not a number", path, input); err != nil {
				return value.Undefined(), err
			}
			continue
		}
		return value.Number(f), nil
	}
}

func (c *Collector) promptBoolean(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	def, _ := form.GetFallback(n, true).AsBool()
	ok, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: c.label(n, path),
		Default: def,
	})
	if err != nil {
		return value.Undefined(), err
	}
	return value.Bool(ok), nil
}

func (c *Collector) promptObject(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	out := value.EmptyRecord()
	for _, field := range n.Fields {
		if field.Schema == nil {
			continue
		}
		v, err := c.collect(ctx, field.Schema, path+"."+field.Name)
		if err != nil {
			return value.Undefined(), err
		}
		if v.IsUndefined() {
			continue
		}
		out = out.Set(field.Name, v)
	}
	return out, nil
}

// promptIntersect merges the records collected for each member. Later
// members overwrite keys set by earlier ones.
func (c *Collector) promptIntersect(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	out := value.EmptyRecord()
	for _, member := range n.List {
		v, err := c.collect(ctx, member, path)
		if err != nil {
			return value.Undefined(), err
		}
		for _, key := range v.Keys() {
			item, _ := v.Get(key)
			out = out.Set(key, item)
		}
	}
	return out, nil
}

func (c *Collector) promptUnion(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	choices := form.Choices(n)
	switch len(choices) {
	case 0:
		return form.GetFallback(n, true), nil
	case 1:
		return c.collect(ctx, choices[0], path)
	}

	options := make([]string, len(choices))
	defaultIdx := -1
	def := form.GetFallback(n, true)
	for i, choice := range choices {
		options[i] = choiceLabel(choice, i)
		if defaultIdx < 0 && choice.Kind == schema.KindConst && value.Equal(choice.Value, def) {
			defaultIdx = i
		}
	}

	for {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      c.label(n, path),
			Options:      options,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return value.Undefined(), err
		}
		if idx < 0 || idx >= len(choices) {
			if err := c.info(ctx, "Invalid %s selection", path); err != nil {
				return value.Undefined(), err
			}
			continue
		}
		return c.collect(ctx, choices[idx], path)
	}
}

func (c *Collector) promptArray(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	items := value.Sequence()
	for {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: c.prompt(fmt.Sprintf("Add an item to %s?", c.title(n, path))),
		})
		if err != nil {
			return value.Undefined(), err
		}
		if !more {
			return items, nil
		}
		item, err := c.collect(ctx, n.Inner, fmt.Sprintf("%s[%d]", path, items.Len()))
		if err != nil {
			return value.Undefined(), err
		}
		items = items.Append(item)
	}
}

func (c *Collector) promptDict(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	out := value.EmptyRecord()
	for {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: c.prompt(fmt.Sprintf("Add an entry to %s?", c.title(n, path))),
		})
		if err != nil {
			return value.Undefined(), err
		}
		if !more {
			return out, nil
		}

		key, err := c.driver.Input(ctx, InputConfig{
			Message: c.prompt("Key"),
			Validator: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("key is required")
				}
				return nil
			},
		})
		if err != nil {
			return value.Undefined(), err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			if err := c.info(ctx, "Invalid %s: key is required", path); err != nil {
				return value.Undefined(), err
			}
			continue
		}

		item, err := c.collect(ctx, n.Inner, path+"."+key)
		if err != nil {
			return value.Undefined(), err
		}
		out = out.Set(key, item)
	}
}

func (c *Collector) promptTuple(ctx context.Context, n *schema.Node, path string) (value.Value, error) {
	items := make([]value.Value, 0, len(n.List))
	for i, element := range n.List {
		item, err := c.collect(ctx, element, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return value.Undefined(), err
		}
		items = append(items, item)
	}
	return value.Sequence(items...), nil
}

func (c *Collector) info(ctx context.Context, format string, args ...any) error {
	return c.driver.Info(ctx, c.theme.InfoPrefix+fmt.Sprintf(format, args...))
}

func (c *Collector) label(n *schema.Node, path string) string {
	return c.prompt(c.title(n, path))
}

func (c *Collector) title(n *schema.Node, path string) string {
	if n.Meta.Description != "" {
		return n.Meta.Description
	}
	return path
}

func (c *Collector) prompt(msg string) string {
	return c.theme.PromptPrefix + msg
}

func choiceLabel(n *schema.Node, idx int) string {
	if n.Meta.Description != "" {
		return n.Meta.Description
	}
	if n.Kind == schema.KindConst {
		if s, ok := n.Value.AsString(); ok {
			return s
		}
		if raw, err := n.Value.MarshalJSON(); err == nil {
			return string(raw)
		}
	}
	return fmt.Sprintf("%d. %s", idx+1, n.Kind)
}
