package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema"
)

func newEqualCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Compare two JSON or YAML values structurally",
		Long:  `Exits with status 0 when the values are deeply equal and 1 otherwise. Record key order is ignored; a missing key equals an undefined one.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadValue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := opts.loadValue(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if !formschema.DeepEqual(a, b) {
				fmt.Fprintln(cmd.OutOrStdout(), "not equal")
				return errNotEqual
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}
}
