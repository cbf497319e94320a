package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symptomcheck/internal/catalog"
)

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the animals and symptoms offered by the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(opts.config().DataPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Animals (%d):\n", len(cat.Animals))
			for _, a := range cat.Animals {
				fmt.Fprintf(out, "  %s\n", a)
			}
			fmt.Fprintf(out, "Symptoms (%d):\n", len(cat.Symptoms))
			for _, s := range cat.Symptoms {
				fmt.Fprintf(out, "  %s\n", s)
			}
			return nil
		},
	}
}
