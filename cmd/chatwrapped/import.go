package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/nao1215/chatwrapped/internal/config"
	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/chatwrapped/internal/pipeline"
	"github.com/nao1215/chatwrapped/internal/session"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>...",
		Short: "Compute a Data Mode summary from JSON exports",
		Long: `Import reads one or more JSON files of any shape, collects the text they
contain and computes the themes, their distribution and the recurring words.

Each file is imported independently. Several files are imported concurrently
(see --batch). A file that is not valid JSON is reported and the command
exits with status 1.

Examples:
  # Import a ChatGPT export
  chatwrapped import conversations.json

  # Write a Markdown report with a pie chart
  chatwrapped import --markdown -o wrapped.md conversations.json

  # Import several exports and dump all datasets as JSON
  chatwrapped import --json a.json b.json c.json

Configuration file (.chatwrapped) example:
  name: Dor
  format: markdown
  import:
    batchSize: 4
    maxDepth: 18`,
		Args: cobra.ArbitraryArgs,
		RunE: runImportCmd,
	}

	addReportFlags(cmd)
	addImportFlags(cmd)

	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.ValidateImport(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	return runImport(ctx, cmd, cfg, logger)
}

// runImport imports cfg.Inputs and writes one report per successful file.
// A status line is printed to stderr as each file finishes.
func runImport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting import",
		"files", len(cfg.Inputs),
		"batch", cfg.BatchSize,
	)

	processor := pipeline.NewBatchProcessor(
		newPipelineFactory(cfg, logger),
		pipeline.WithBatchLogger(logger),
		pipeline.WithConcurrency(cfg.BatchSize),
	)

	var (
		mu     sync.Mutex
		failed int
		runs   = make([]*model.ImportRun, len(cfg.Inputs))
		stderr = cmd.ErrOrStderr()
	)
	err := processor.ProcessBatchWithCallback(ctx, cfg.Inputs, func(run *model.ImportRun, index int) {
		mu.Lock()
		defer mu.Unlock()

		runs[index] = run
		if !run.Succeeded() {
			failed++
			fmt.Fprintf(stderr, "%s: %s\n", run.Source, session.MsgImportFailed)
			fmt.Fprintf(stderr, "  %s\n", run.ErrorMessage)
			return
		}
		fmt.Fprintf(stderr, "%s: %s\n", run.Source, session.MsgProcessed(len(run.Fragments)))
	})
	if err != nil {
		return fmt.Errorf("import cancelled: %w", err)
	}

	if err := outputRuns(cmd, cfg, runs); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files could not be imported", session.ErrImport, failed, len(runs))
	}
	return nil
}

// outputRuns writes the successful runs. Several runs in JSON format are
// written as a single array of runs; every other case writes one report per
// dataset.
func outputRuns(cmd *cobra.Command, cfg *config.Config, runs []*model.ImportRun) error {
	succeeded := make([]*model.ImportRun, 0, len(runs))
	for _, run := range runs {
		if run.Succeeded() && run.Dataset != nil {
			succeeded = append(succeeded, run)
		}
	}
	if len(succeeded) == 0 {
		return nil
	}

	output, closeFn, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}

	if len(runs) > 1 && cfg.ReportFormat() == config.FormatJSON {
		if teeing(cfg) {
			output = io.MultiWriter(output, cmd.OutOrStdout())
		}
		if _, err := newJSONWriter(cfg, output).WriteRuns(succeeded); err != nil {
			_ = closeFn()
			return fmt.Errorf("failed to write report: %w", err)
		}
		return closeFn()
	}

	for _, run := range succeeded {
		if _, err := datasetWriter(cmd, cfg, output, model.ModeData).Write(run.Dataset); err != nil {
			_ = closeFn()
			return fmt.Errorf("failed to write report for %s: %w", run.Source, err)
		}
	}
	return closeFn()
}
