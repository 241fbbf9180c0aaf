package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/inspect"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Report how each node of a schema is classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.loadSchema(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report := inspect.Inspect(root)
			if opts.format == formatYAML {
				return report.WriteYAML(cmd.OutOrStdout())
			}
			return report.WriteJSON(cmd.OutOrStdout())
		},
	}
}
