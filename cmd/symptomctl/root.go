package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"symptomcheck/internal/config"
	"symptomcheck/internal/logging"
)

// options are the artifact paths shared by every subcommand. Empty flags keep
// the value from the environment.
type options struct {
	cfg      *config.Config
	data     string
	encoder  string
	model    string
	advice   string
	logLevel string
}

func (o *options) config() *config.Config {
	cfg := *o.cfg
	if o.data != "" {
		cfg.DataPath = o.data
	}
	if o.encoder != "" {
		cfg.EncoderPath = o.encoder
	}
	if o.model != "" {
		cfg.ModelPath = o.model
	}
	if o.advice != "" {
		cfg.AdviceFile = o.advice
	}
	return &cfg
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Load()}

	root := &cobra.Command{
		Use:           "symptomctl",
		Short:         "Inspect predictor artifacts and run one-off predictions",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to stderr so command output stays parseable.
			logging.Init(opts.cfg.LogFormat, logging.ParseLevel(opts.logLevel))
		},
	}

	root.PersistentFlags().StringVar(&opts.data, "data", "", "reference dataset CSV (default $DATA_PATH)")
	root.PersistentFlags().StringVar(&opts.encoder, "encoder", "", "encoder artifact (default $ENCODER_PATH)")
	root.PersistentFlags().StringVar(&opts.model, "model", "", "classifier artifact (default $MODEL_PATH)")
	root.PersistentFlags().StringVar(&opts.advice, "advice", "", "advisory YAML file (default built-in table)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", slog.LevelWarn.String(), "log level")

	root.AddCommand(
		newCatalogCmd(opts),
		newPredictCmd(opts),
		newAdviceCmd(opts),
	)
	return root
}
