package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/exam2nb/exam2nb/internal/api"
	"github.com/exam2nb/exam2nb/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question-splitting HTTP API",
	Long: `Serve starts an HTTP server exposing the splitter: upload a document
to POST /api/split and receive the questions as JSON. No API key for an
LLM is needed; the server does not generate solutions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		srv := api.NewServer(logger, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		logger.Info("starting exam2nb server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
