package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compute a Data Mode summary from the built-in demo conversation",
		Long: `Demo runs the import pipeline on a small built-in conversation, the same way
"import" does for a real export.

Examples:
  chatwrapped demo
  chatwrapped demo --json`,
		Args: cobra.NoArgs,
		RunE: runDemoCmd,
	}

	addReportFlags(cmd)
	addImportFlags(cmd)

	return cmd
}

// runDemoCmd executes the demo command.
func runDemoCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	sess := newSession(cmd, cfg, logger)
	if err := sess.LoadDemo(ctx); err != nil {
		return err
	}
	return outputReport(cmd, cfg, sess.Dataset(), sess.Mode())
}
