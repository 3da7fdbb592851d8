package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exam2nb/exam2nb/internal/config"
	"github.com/exam2nb/exam2nb/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Split an exam document into questions and print them",
	Long: `Extract reads an exam document, converts embedded equations to LaTeX,
splits the content into questions and prints each question's markdown.
No API key is needed; nothing is sent to an LLM.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		runner := pipeline.NewRunner(nil, logger, cfg)
		questions, warnings, err := runner.Extract(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		for _, q := range questions {
			if q.Ordinal == 0 {
				fmt.Fprintln(out, "--- preamble ---")
			} else {
				fmt.Fprintf(out, "--- question %s ---\n", q.Number)
			}
			fmt.Fprintln(out, q.Markdown)
			fmt.Fprintln(out)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "extracted %d questions\n", len(questions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
