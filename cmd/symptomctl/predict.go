package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symptomcheck/internal/bootstrap"
	"symptomcheck/internal/models"
)

func newPredictCmd(opts *options) *cobra.Command {
	var animal string

	cmd := &cobra.Command{
		Use:   "predict --animal NAME SYMPTOM...",
		Short: "Classify one animal and symptom combination",
		Long: `Runs the same validation, encoding, classification and advice lookup as
the web form. Pass up to five symptoms; at least three are required.`,
		Args: cobra.MaximumNArgs(models.SymptomSlots),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := bootstrap.Load(cmd.Context(), opts.config())
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := st.Service.Submit(cmd.Context(), animal, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := res.Prediction
			fmt.Fprintf(out, "Prediction Result: %s\n", p.ResultText())
			fmt.Fprintf(out, "Probability - Not Dangerous: %.2f, Dangerous: %.2f\n", p.ProbNotDangerous, p.ProbDangerous)
			if len(res.Advice) > 0 {
				fmt.Fprintln(out, "\nRecommended Actions Based on Symptoms")
				for _, a := range res.Advice {
					fmt.Fprintln(out, a.Markdown())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&animal, "animal", "", "animal name as listed by the catalog command")
	return cmd
}
