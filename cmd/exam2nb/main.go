// Package main is the entry point for the exam2nb CLI.
//
// exam2nb turns math exam sheets (DOCX with embedded equations, PDF,
// markdown or plain text) into per-question markdown and, with solve,
// into Jupyter notebooks with AI-generated solution code.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "exam2nb",
	Short: "Convert math exam documents into solvable notebooks",
	Long: `exam2nb extracts questions from math exam documents. Word equation
markup (OMML) is converted to LaTeX, the document is split into
individual questions, and each question can be solved with an LLM to
produce a Jupyter notebook.

Subcommands: extract prints the split questions, solve produces a
notebook, serve exposes the splitter over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./exam2nb.yaml or ~/.config/exam2nb/config.yaml)")

	logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("exam2nb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "exam2nb"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		logger.Info("using config file", "path", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
