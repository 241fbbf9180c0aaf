package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formschema/pkg/prompt"
	"github.com/goliatone/go-formschema/pkg/value"
)

type scriptedDriver struct {
	inputs []string
}

func (d *scriptedDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func run(t *testing.T, opts *rootOptions, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestFallback(t *testing.T) {
	out, _, err := run(t, &rootOptions{}, "fallback", "testdata/profile.yaml")
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if out != "{\"name\":\"ada\"}\n" {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = run(t, &rootOptions{}, "fallback", "--format", "yaml", "testdata/profile.yaml")
	if err != nil {
		t.Fatalf("fallback yaml: %v", err)
	}
	if out != "name: ada\n" {
		t.Fatalf("unexpected yaml output %q", out)
	}
}

func TestEqual(t *testing.T) {
	out, _, err := run(t, &rootOptions{}, "equal", "testdata/a.json", "testdata/b.yaml")
	if err != nil || out != "equal\n" {
		t.Fatalf("expected equal, got %q (%v)", out, err)
	}

	out, _, err = run(t, &rootOptions{}, "equal", "testdata/a.json", "testdata/c.json")
	if !errors.Is(err, errNotEqual) || out != "not equal\n" {
		t.Fatalf("expected not equal, got %q (%v)", out, err)
	}
}

func TestInspect_OpenAPI(t *testing.T) {
	_, _, err := run(t, &rootOptions{}, "inspect", "testdata/api.yaml")
	if err == nil || !strings.Contains(err.Error(), "--openapi-component") || !strings.Contains(err.Error(), "Pet") {
		t.Fatalf("expected component hint, got %v", err)
	}

	out, _, err := run(t, &rootOptions{}, "inspect", "--openapi-component", "Pet", "testdata/api.yaml")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	report, err := value.ParseJSON([]byte(out))
	if err != nil {
		t.Fatalf("parse report: %v\n%s", err, out)
	}
	entries, _ := report.Get("entries")
	if entries.Len() != 3 {
		t.Fatalf("expected three entries, got %d", entries.Len())
	}
}

func TestFill(t *testing.T) {
	opts := &rootOptions{driver: &scriptedDriver{inputs: []string{"grace", "40"}}}

	out, errOut, err := run(t, opts, "fill", "testdata/profile.yaml")
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if out != "{\"name\":\"grace\",\"age\":40}\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if errOut != "dirty: true\n" {
		t.Fatalf("expected dirty state, got %q", errOut)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, _, err := run(t, &rootOptions{}, "fallback", "--format", "xml", "testdata/profile.yaml"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestPromptOutput(t *testing.T) {
	if got := promptOutput(&bytes.Buffer{}); got != os.Stderr {
		t.Fatalf("non-terminal writers should fall back to stderr")
	}
	if got := promptOutput(os.Stdout); got != os.Stdout {
		t.Fatalf("file writers should be used as given")
	}
}
