package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"symptomcheck/internal/bootstrap"
)

func newAdviceCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advice",
		Short: "Inspect the first-aid advisory table",
	}
	cmd.AddCommand(newAdviceLookupCmd(opts), newAdviceLintCmd(opts))
	return cmd
}

func newAdviceLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup SYMPTOM",
		Short: "Print the advice for one symptom",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := bootstrap.LoadAdvice(opts.config().AdviceFile)
			if err != nil {
				return err
			}

			symptom := strings.Join(args, " ")
			blocks := table.Resolve([]string{symptom})
			if len(blocks) == 0 {
				return fmt.Errorf("no advice for %q", symptom)
			}
			fmt.Fprintln(cmd.OutOrStdout(), blocks[0].Markdown())
			return nil
		},
	}
}

func newAdviceLintCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report symptoms defined more than once",
		Long: `Loads the advisory table and lists every symptom whose advice is
replaced by a later definition. With --strict any duplicate is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := bootstrap.LoadAdvice(opts.config().AdviceFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dups := table.Duplicates()
			fmt.Fprintf(out, "%d symptoms, %d duplicate definitions\n", table.Len(), len(dups))
			for _, d := range dups {
				fmt.Fprintf(out, "  duplicate: %s\n", d)
			}

			if strict && len(dups) > 0 {
				return fmt.Errorf("advisory table has %d duplicate definitions", len(dups))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when duplicates are found")
	return cmd
}
