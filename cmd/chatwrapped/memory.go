package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/chatwrapped/internal/config"
	"github.com/nao1215/chatwrapped/internal/pipeline"
	"github.com/nao1215/chatwrapped/internal/session"
	"github.com/spf13/cobra"
)

// NewMemoryCmd creates the memory command.
func NewMemoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Show the built-in Memory Mode summary",
		Long: `Memory shows the built-in summary that is written from memory instead of
being computed from data. Use "import" to compute a summary from your own
export.

Examples:
  # Show the summary in the terminal
  chatwrapped memory

  # Write it as Markdown
  chatwrapped memory --markdown -o wrapped.md`,
		Args: cobra.NoArgs,
		RunE: runMemoryCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runMemoryCmd executes the memory command.
func runMemoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	sess := newSession(cmd, cfg, setupLogger(cmd))
	return outputReport(cmd, cfg, sess.Dataset(), sess.Mode())
}

// newPipelineFactory returns a factory of import pipelines tuned by cfg.
func newPipelineFactory(cfg *config.Config, logger *slog.Logger) func() *pipeline.Pipeline {
	return func() *pipeline.Pipeline {
		return pipeline.DefaultPipeline(
			[]pipeline.Option{pipeline.WithLogger(logger)},
			pipeline.WithPipelineMaxDepth(cfg.MaxDepth),
			pipeline.WithPipelineKeyLength(cfg.KeyLength),
		)
	}
}

// newSession creates a session whose notifications go to stderr, so they
// never mix with a report written to stdout.
func newSession(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) *session.Session {
	return session.New(
		session.WithLogger(logger),
		session.WithPipelineFactory(newPipelineFactory(cfg, logger)),
		session.WithNotifier(session.NotifierFunc(func(msg string) {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		})),
	)
}
