package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/chatwrapped/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for chatwrapped.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatwrapped",
		Short: "A local year-in-review of your chat history",
		Long: `chatwrapped turns a chat history into a "Wrapped" style summary:
top themes, a distribution chart, recurring words and projects.

Memory Mode shows a built-in summary. Data Mode computes the summary from any
JSON export you import. Nothing leaves your machine.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .chatwrapped in current, XDG config or home directory)")

	cmd.AddCommand(NewMemoryCmd())
	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewSessionCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getLogJSONFlag retrieves the log-json flag from the command or its parent.
func getLogJSONFlag(cmd *cobra.Command) bool {
	enabled, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		enabled, err = cmd.Root().PersistentFlags().GetBool("log-json")
		if err != nil {
			return false
		}
	}
	return enabled
}

// setupLogger creates the structured logger of a command. Chat text never
// reaches the log output; see log.PrivateHandler.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	newLogger := log.NewPrivateLogger
	if getLogJSONFlag(cmd) {
		newLogger = log.NewPrivateJSONLogger
	}
	logger := newLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
