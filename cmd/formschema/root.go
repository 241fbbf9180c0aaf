package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/prompt"
)

// errNotEqual makes `equal` exit with status 1 without printing an error.
var errNotEqual = errors.New("values differ")

type rootOptions struct {
	format    string
	component string
	strict    bool
	timeout   time.Duration

	// driver replaces the survey prompts of `fill` when set.
	driver prompt.Driver
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formschema",
		Short:         "Inspect schema trees the way a form renderer sees them",
		Long:          `formschema loads a schema tree from a YAML/JSON schema file or an OpenAPI component and reports how forms classify it, what its fallback value is, or collects a value interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown --format %q (want json or yaml)", opts.format)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.format, "format", formatJSON, "Output format: json or yaml")
	flags.StringVar(&opts.component, "openapi-component", "", "Treat the input as an OpenAPI document and use components.schemas.<name>")
	flags.BoolVar(&opts.strict, "strict", false, "Reject unknown kinds and keys in schema files")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout for fetching http(s) sources")

	cmd.AddCommand(
		newInspectCmd(opts),
		newFallbackCmd(opts),
		newFillCmd(opts),
		newEqualCmd(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(&rootOptions{})
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNotEqual) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
