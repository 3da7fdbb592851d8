// Package pipeline runs the document-to-notebook conversion end to end:
// read, extract, split, solve, write.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exam2nb/exam2nb/internal/config"
	"github.com/exam2nb/exam2nb/internal/document"
	"github.com/exam2nb/exam2nb/internal/extractor"
	"github.com/exam2nb/exam2nb/internal/notebook"
	"github.com/exam2nb/exam2nb/internal/reader"
	"github.com/exam2nb/exam2nb/internal/solver"
	"github.com/exam2nb/exam2nb/internal/splitter"
)

// Runner processes documents. Independent documents can be processed by
// separate Runners concurrently; a Runner itself works one document at a
// time.
type Runner struct {
	solver *solver.Client
	log    *slog.Logger
	cfg    config.Config
}

func NewRunner(sv *solver.Client, log *slog.Logger, cfg config.Config) *Runner {
	return &Runner{solver: sv, log: log, cfg: cfg}
}

// Extract reads a document and splits it into questions. This is the
// whole pipeline short of solution generation; the extract subcommand
// stops here.
func (r *Runner) Extract(inputPath string) ([]document.Question, []string, error) {
	rd, err := reader.ForFile(inputPath)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	body, err := rd.Read(f, filepath.Base(inputPath))
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}

	blocks, warnings := extractor.Extract(body)
	for _, w := range warnings {
		r.log.Warn("extraction warning", "warning", w)
	}

	questions := splitter.Split(blocks, splitter.Options{
		KeepPreamble: r.cfg.KeepPreamble,
		Log:          r.log,
	})
	r.log.Info("document split", "input", inputPath, "questions", len(questions))
	return questions, warnings, nil
}

// Run converts one document to a solved notebook at outputPath.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) error {
	questions, _, err := r.Extract(inputPath)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("document has no content")
	}

	solved := r.Solve(ctx, questions)

	title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + " - 풀이"
	nb := notebook.Build(solved, title)
	if err := notebook.Write(nb, outputPath); err != nil {
		return err
	}

	stats := r.solver.Stats().Snapshot()
	r.log.Info("notebook written",
		"output", outputPath,
		"questions", len(solved),
		"llm_calls", stats.Count,
		"llm_avg_ms", stats.AvgMs,
	)
	return nil
}

// Solve generates solution code for each question with bounded concurrency
// and per-question retry. A failed question gets a placeholder code cell;
// one bad question never sinks the document.
func (r *Runner) Solve(ctx context.Context, questions []document.Question) []notebook.SolvedQuestion {
	solved := make([]notebook.SolvedQuestion, len(questions))
	sem := make(chan struct{}, r.cfg.Workers)
	done := make(chan int, len(questions))

	for i, q := range questions {
		solved[i] = notebook.SolvedQuestion{Number: q.Number, Markdown: q.Markdown}

		// A preamble unit alongside real questions is context, not a
		// problem to solve.
		if q.Ordinal == 0 && len(questions) > 1 {
			done <- i
			continue
		}

		sem <- struct{}{}
		go func(i int, q document.Question) {
			defer func() { <-sem }()
			defer func() { done <- i }()

			code, err := r.solveWithRetry(ctx, q)
			if err != nil {
				r.log.Error("solution generation failed", "question", q.Number, "error", err)
				solved[i].Code = solver.FailureCode(err)
				return
			}
			solved[i].Code = code
			r.log.Info("question solved", "question", q.Number, "code_bytes", len(code))
		}(i, q)
	}

	for range questions {
		<-done
	}
	return solved
}

func (r *Runner) solveWithRetry(ctx context.Context, q document.Question) (string, error) {
	var lastErr error
	for attempt := range r.cfg.MaxRetries {
		code, err := r.solver.Solve(ctx, q.Markdown)
		if err == nil {
			return code, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return "", err
		}
		r.log.Warn("retryable solver error", "question", q.Number, "attempt", attempt, "error", err)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("solver failed after %d attempts: %w", r.cfg.MaxRetries, lastErr)
}
