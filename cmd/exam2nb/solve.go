package main

import (
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/exam2nb/exam2nb/internal/config"
	"github.com/exam2nb/exam2nb/internal/pipeline"
	"github.com/exam2nb/exam2nb/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <input>",
	Short: "Solve every question and write a Jupyter notebook",
	Long: `Solve runs the full pipeline: the document is split into questions,
each question is sent to the configured LLM for solution code, and the
result is written as a Jupyter notebook. Requires an OpenAI API key
(OPENAI_API_KEY or EXAM2NB_OPENAI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Model = model
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".ipynb"
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sv := solver.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature)
		defer sv.Close()

		runner := pipeline.NewRunner(sv, logger, cfg)
		return runner.Run(ctx, input, output)
	},
}

func init() {
	solveCmd.Flags().StringP("output", "o", "", "output notebook path (default: input with .ipynb extension)")
	solveCmd.Flags().String("model", "", "override the configured LLM model")

	rootCmd.AddCommand(solveCmd)
}
