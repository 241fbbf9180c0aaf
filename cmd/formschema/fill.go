package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema"
	"github.com/goliatone/go-formschema/pkg/prompt"
)

func newFillCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fill <file>",
		Short: "Collect a value for a schema interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.loadSchema(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			d := opts.driver
			if d == nil {
				d = prompt.NewSurveyDriver(promptOutput(cmd.ErrOrStderr()))
			}
			collected, err := prompt.New(prompt.WithPromptDriver(d)).Collect(cmd.Context(), root)
			if err != nil {
				return err
			}

			if err := writeValue(cmd.OutOrStdout(), opts.format, collected); err != nil {
				return err
			}
			dirty := !formschema.DeepEqual(collected, formschema.GetFallback(root, true))
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "dirty: %t\n", dirty)
			return err
		},
	}
}

// promptOutput picks the terminal prompts are drawn on. Prompts stay off
// stdout so the collected value can be redirected.
func promptOutput(w io.Writer) terminal.FileWriter {
	if f, ok := w.(terminal.FileWriter); ok {
		return f
	}
	return os.Stderr
}
