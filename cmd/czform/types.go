package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(d deps, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the change types offered by the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configureLogging(d, opts)
			cfg, _, err := loadConfig(d, opts)
			if err != nil {
				return err
			}
			catalog, err := cfg.ChangeTypes()
			if err != nil {
				return err
			}
			for _, choice := range catalog.Choices() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", choice.Value, choice.Label)
			}
			return nil
		},
	}
}
