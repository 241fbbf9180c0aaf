package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema"
)

func newFallbackCmd(opts *rootOptions) *cobra.Command {
	var required bool

	cmd := &cobra.Command{
		Use:   "fallback <file>",
		Short: "Print the initial value a form would start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.loadSchema(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), opts.format, formschema.GetFallback(root, required))
		},
	}
	cmd.Flags().BoolVar(&required, "required", false, "Infer an empty value when the schema has no default")
	return cmd
}
