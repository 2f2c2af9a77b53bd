package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nao1215/chatwrapped/internal/config"
	"github.com/nao1215/chatwrapped/internal/session"
	"github.com/spf13/cobra"
)

const sessionPrompt = "wrapped> "

const sessionHelp = `Commands:
  memory                     switch to Memory Mode (built-in summary)
  data                       switch to Data Mode; load a file to compute
  demo                       import the built-in demo conversation
  load <file.json>           import a JSON export
  reset                      back to Memory Mode
  show [text|json|markdown]  print the summary on display
  status                     print mode and counters
  help                       print this help
  exit                       quit`

// lineReader is the part of readline the session loop needs.
type lineReader interface {
	Readline() (string, error)
}

// NewSessionCmd creates the session command.
func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive session",
		Long: `Session starts an interactive prompt that keeps one summary in memory.
Switch modes, load the demo or your own export, and show the result in any
report format. Nothing is saved when the session ends.

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: runSessionCmd,
	}

	addReportFlags(cmd)
	addImportFlags(cmd)

	return cmd
}

// runSessionCmd executes the session command.
func runSessionCmd(cmd *cobra.Command, _ []string) error {
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sessionPrompt,
		AutoComplete:    sessionCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "chatwrapped session. Type help for commands, exit to quit.")

	sess := newSession(cmd, cfg, logger)
	return runREPL(ctx, rl, cmd, cfg, sess)
}

func sessionCompleter() *readline.PrefixCompleter {
	formats := make([]readline.PrefixCompleterInterface, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		formats = append(formats, readline.PcItem(f))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("memory"),
		readline.PcItem("data"),
		readline.PcItem("demo"),
		readline.PcItem("load"),
		readline.PcItem("reset"),
		readline.PcItem("show", formats...),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// runREPL reads commands until exit, end of input or cancellation.
// Ctrl-C on an empty line quits; on a partial line it clears the line.
func runREPL(ctx context.Context, lines lineReader, cmd *cobra.Command, cfg *config.Config, sess *session.Session) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := execLine(ctx, cmd, cfg, sess, line)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		if quit {
			return nil
		}
	}
}

// execLine runs one session command. A failed import is reported and the
// session keeps its state.
func execLine(ctx context.Context, cmd *cobra.Command, cfg *config.Config, sess *session.Session, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	out := cmd.OutOrStdout()
	switch name, args := strings.ToLower(fields[0]), fields[1:]; name {
	case "exit", "quit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(out, sessionHelp)
	case "memory":
		sess.Memory()
	case "data":
		sess.Data()
	case "reset":
		sess.Reset()
	case "demo":
		return false, sess.LoadDemo(ctx)
	case "load":
		if len(args) == 0 {
			return false, errors.New("usage: load <file.json>")
		}
		return false, loadFile(ctx, sess, strings.Join(args, " "))
	case "show":
		return false, show(cmd, cfg, sess, args)
	case "status":
		stats := sess.Stats()
		fmt.Fprintf(out, "Mode:          %s\n", sess.Mode().Label())
		fmt.Fprintf(out, "Conversations: %s\n", statusCounter(stats.SourceItems))
		fmt.Fprintf(out, "Fragments:     %s\n", statusCounter(stats.Fragments))
	default:
		return false, fmt.Errorf("unknown command %q (type help)", name)
	}
	return false, nil
}

// loadFile imports path into the session.
func loadFile(ctx context.Context, sess *session.Session, path string) error {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("%s: %w", session.MsgImportFailed, err)
	}
	defer f.Close()

	return sess.Import(ctx, path, f)
}

// show prints the dataset on display. An optional argument overrides the
// configured format for this call only.
func show(cmd *cobra.Command, cfg *config.Config, sess *session.Session, args []string) error {
	view := *cfg
	view.ReportFile = ""
	if len(args) > 0 {
		view.Format = args[0]
		view.JSONReport = false
		view.MarkdownReport = false
	}
	if err := view.Validate(); err != nil {
		return err
	}

	_, err := newReportWriter(&view, cmd.OutOrStdout(), sess.Mode()).Write(sess.Dataset())
	return err
}

func statusCounter(n int) string {
	if n == 0 {
		return "—"
	}
	return fmt.Sprint(n)
}
