package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/nao1215/chatwrapped/internal/config"
	"github.com/nao1215/chatwrapped/internal/log"
	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/chatwrapped/internal/session"
	"github.com/spf13/cobra"
)

const exportJSON = `{"conversations":[{"title":"Roadmap","messages":[
{"role":"user","content":"Build a dashboard with React and Tailwind"},
{"role":"assistant","content":"Write a short poem for the newsletter"}]}]}`

// writeExport writes content to a file in a temporary directory.
func writeExport(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

// decodeDataset parses a JSON dataset report.
func decodeDataset(t *testing.T, out string) *model.Dataset {
	t.Helper()

	var ds model.Dataset
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	return &ds
}

func TestMemoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints the built-in summary", func(t *testing.T) {
		t.Parallel()

		out, _, err := executeRoot(t, "memory")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"CHATGPT WRAPPED", "Mode:          Memory Mode", "Conversations: —"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("json output is the baseline", func(t *testing.T) {
		t.Parallel()

		out, _, err := executeRoot(t, "memory", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ds := decodeDataset(t, out)
		if ds.Meta.Mode != model.ModeMemory {
			t.Errorf("expected memory mode, got %q", ds.Meta.Mode)
		}
		if ds.TotalWeight() != 100 {
			t.Errorf("expected weights to sum to 100, got %d", ds.TotalWeight())
		}
	})

	t.Run("rejects conflicting formats", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "memory", "--json", "--markdown")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "memory", "--format", "html")
		if !errors.Is(err, config.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestDemoCmd(t *testing.T) {
	t.Parallel()

	out, stderr, err := executeRoot(t, "demo", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds := decodeDataset(t, out)
	if ds.Meta.Mode != model.ModeData {
		t.Errorf("expected data mode, got %q", ds.Meta.Mode)
	}
	if ds.Stats.SourceItems != 1 {
		t.Errorf("expected 1 source item, got %d", ds.Stats.SourceItems)
	}
	if ds.Stats.Fragments == 0 {
		t.Error("expected fragments to be counted")
	}
	if len(ds.Themes.Top5) != 5 {
		t.Errorf("expected 5 themes, got %d", len(ds.Themes.Top5))
	}
	if !strings.Contains(stderr, session.MsgDemoLoaded) {
		t.Errorf("expected demo notification on stderr, got %q", stderr)
	}
}

func TestImportCmd(t *testing.T) {
	t.Parallel()

	t.Run("imports one file", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, "export.json", exportJSON)
		out, _, err := executeRoot(t, "import", "--json", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ds := decodeDataset(t, out)
		if ds.Meta.Mode != model.ModeData {
			t.Errorf("expected data mode, got %q", ds.Meta.Mode)
		}
		if ds.Stats.SourceItems != 1 {
			t.Errorf("expected 1 source item, got %d", ds.Stats.SourceItems)
		}
		if ds.Stats.Fragments == 0 {
			t.Error("expected fragments to be counted")
		}
		if ds.TotalWeight() != 100 {
			t.Errorf("expected weights to sum to 100, got %d", ds.TotalWeight())
		}
	})

	t.Run("text report shows data mode counters", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, "export.json", exportJSON)
		out, _, err := executeRoot(t, "import", "--format", "text", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Mode:          Data Mode") {
			t.Error("expected data mode in the text report")
		}
		if !strings.Contains(out, "Conversations: 1") {
			t.Error("expected one conversation in the text report")
		}
	})

	t.Run("writes report file", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, "export.json", exportJSON)
		outputPath := filepath.Join(t.TempDir(), "out", "wrapped.md")
		out, _, err := executeRoot(t, "import", "--markdown", "-o", outputPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected nothing on stdout, got %q", out)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "# ChatGPT Wrapped") {
			t.Error("expected a Markdown report")
		}
	})

	t.Run("tee prints the report and writes the file", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, "export.json", exportJSON)
		outputPath := filepath.Join(t.TempDir(), "wrapped.json")
		out, _, err := executeRoot(t, "import", "--json", "--tee", "-o", outputPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if out != string(content) {
			t.Errorf("expected stdout to match the report file")
		}
		if ds := decodeDataset(t, out); ds.Meta.Mode != model.ModeData {
			t.Errorf("expected data mode, got %q", ds.Meta.Mode)
		}
	})

	t.Run("invalid JSON fails with the import message", func(t *testing.T) {
		t.Parallel()

		path := writeExport(t, "broken.json", `{not json`)
		out, stderr, err := executeRoot(t, "import", path)
		if !errors.Is(err, session.ErrImport) {
			t.Fatalf("expected ErrImport, got %v", err)
		}
		if !strings.Contains(stderr, session.MsgImportFailed) {
			t.Errorf("expected import failure message on stderr, got %q", stderr)
		}
		if out != "" {
			t.Errorf("expected no report, got %q", out)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "import", filepath.Join(t.TempDir(), "missing.json"))
		if !errors.Is(err, session.ErrImport) {
			t.Errorf("expected ErrImport, got %v", err)
		}
	})

	t.Run("requires an input", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "import")
		if !errors.Is(err, config.ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("several files as JSON are one array of runs", func(t *testing.T) {
		t.Parallel()

		a := writeExport(t, "a.json", exportJSON)
		b := writeExport(t, "b.json", `["just one string", "and another one"]`)
		out, _, err := executeRoot(t, "import", "--json", "--batch", "2", a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var runs []struct {
			Source  string         `json:"source"`
			Dataset *model.Dataset `json:"dataset"`
		}
		if err := json.Unmarshal([]byte(out), &runs); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].Source != a || runs[1].Source != b {
			t.Errorf("expected runs in input order, got %q, %q", runs[0].Source, runs[1].Source)
		}
		if runs[1].Dataset == nil || runs[1].Dataset.Stats.SourceItems != 2 {
			t.Error("expected the array export to count its items")
		}
	})

	t.Run("one bad file does not hide the good one", func(t *testing.T) {
		t.Parallel()

		good := writeExport(t, "good.json", exportJSON)
		bad := writeExport(t, "bad.json", `[`)
		out, stderr, err := executeRoot(t, "import", good, bad)
		if !errors.Is(err, session.ErrImport) {
			t.Fatalf("expected ErrImport, got %v", err)
		}
		if strings.Count(out, "CHATGPT WRAPPED") != 1 {
			t.Errorf("expected one report, got %d", strings.Count(out, "CHATGPT WRAPPED"))
		}
		if !strings.Contains(stderr, bad+": "+session.MsgImportFailed) {
			t.Errorf("expected the failed file to be named, got %q", stderr)
		}
		if !strings.Contains(stderr, good+": Processed ✅") {
			t.Errorf("expected a status line for the good file, got %q", stderr)
		}
	})
}

// fakeLines replays scripted readline results.
type fakeLines struct {
	lines []string
	errs  []error
}

func (f *fakeLines) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line, err := f.lines[0], f.errs[0]
	f.lines, f.errs = f.lines[1:], f.errs[1:]
	return line, err
}

// script returns a reader that yields lines without errors.
func script(lines ...string) *fakeLines {
	return &fakeLines{lines: lines, errs: make([]error, len(lines))}
}

// newTestSession returns a session command with captured output.
func newTestSession(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer, *session.Session) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	cfg := config.NewConfig()
	logger := log.NewPrivateLogger(&stderr, false)
	return cmd, &stdout, &stderr, newSession(cmd, cfg, logger)
}

func TestNewSessionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewSessionCmd()
	if cmd.Use != "session" {
		t.Errorf("expected use 'session', got %q", cmd.Use)
	}
	for _, name := range []string{"json", "markdown", "format", "batch", "max-depth"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}
}

func TestRunREPL(t *testing.T) {
	t.Parallel()

	t.Run("demo then status", func(t *testing.T) {
		t.Parallel()

		cmd, stdout, stderr, sess := newTestSession(t)
		err := runREPL(context.Background(), script("status", "demo", "status", "exit", "status"), cmd, config.NewConfig(), sess)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := stdout.String()
		if !strings.Contains(out, "Mode:          Memory Mode") {
			t.Error("expected Memory Mode status before the demo")
		}
		if !strings.Contains(out, "Mode:          Data Mode") {
			t.Error("expected Data Mode status after the demo")
		}
		if strings.Count(out, "Mode:") != 2 {
			t.Errorf("expected exit to stop the loop, got %d status blocks", strings.Count(out, "Mode:"))
		}
		if !strings.Contains(stderr.String(), session.MsgDemoLoaded) {
			t.Error("expected demo notification")
		}
	})

	t.Run("failed load keeps state", func(t *testing.T) {
		t.Parallel()

		cmd, _, stderr, sess := newTestSession(t)
		bad := writeExport(t, "bad.json", `{"a":`)
		err := runREPL(context.Background(), script("demo", "load "+bad), cmd, config.NewConfig(), sess)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if sess.Mode() != model.ModeData || sess.Stats().SourceItems != 1 {
			t.Errorf("expected the demo state to survive, got %s %+v", sess.Mode(), sess.Stats())
		}
		if !strings.Contains(stderr.String(), session.MsgImportFailed) {
			t.Error("expected import failure message")
		}
	})

	t.Run("load and reset", func(t *testing.T) {
		t.Parallel()

		cmd, _, stderr, sess := newTestSession(t)
		path := writeExport(t, "export.json", exportJSON)

		if err := runREPL(context.Background(), script("load "+path), cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Mode() != model.ModeData || sess.Stats().Fragments == 0 {
			t.Fatalf("expected imported data, got %s %+v", sess.Mode(), sess.Stats())
		}

		if err := runREPL(context.Background(), script("reset"), cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Mode() != model.ModeMemory || sess.Stats() != (model.Stats{}) {
			t.Errorf("expected memory mode with zero counters, got %s %+v", sess.Mode(), sess.Stats())
		}
		if !strings.Contains(stderr.String(), session.MsgReset) {
			t.Error("expected reset notification")
		}
	})

	t.Run("show with a format argument", func(t *testing.T) {
		t.Parallel()

		cmd, stdout, _, sess := newTestSession(t)
		if err := runREPL(context.Background(), script("show json"), cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ds := decodeDataset(t, stdout.String())
		if ds.Meta.Mode != model.ModeMemory {
			t.Errorf("expected memory dataset, got %q", ds.Meta.Mode)
		}
	})

	t.Run("data mode before import shows the baseline as data mode", func(t *testing.T) {
		t.Parallel()

		cmd, stdout, stderr, sess := newTestSession(t)
		if err := runREPL(context.Background(), script("data", "show text"), cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "Mode:          Data Mode") {
			t.Error("expected the text report to show Data Mode")
		}
		if !strings.Contains(stderr.String(), session.MsgDataMode) {
			t.Error("expected data mode notification")
		}
	})

	t.Run("errors are reported and the loop goes on", func(t *testing.T) {
		t.Parallel()

		cmd, stdout, stderr, sess := newTestSession(t)
		err := runREPL(context.Background(), script("bogus", "load", "show html", "help"), cmd, config.NewConfig(), sess)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		errOut := stderr.String()
		if !strings.Contains(errOut, `unknown command "bogus"`) {
			t.Error("expected unknown command error")
		}
		if !strings.Contains(errOut, "usage: load") {
			t.Error("expected load usage error")
		}
		if !strings.Contains(errOut, config.ErrUnknownFormat.Error()) {
			t.Error("expected unknown format error")
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Error("expected help after the errors")
		}
	})

	t.Run("interrupt on empty line quits", func(t *testing.T) {
		t.Parallel()

		cmd, stdout, _, sess := newTestSession(t)
		lines := &fakeLines{
			lines: []string{"half a comm", "", "status"},
			errs:  []error{readline.ErrInterrupt, readline.ErrInterrupt, nil},
		}
		if err := runREPL(context.Background(), lines, cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout.String(), "Mode:") {
			t.Error("expected the loop to stop before status")
		}
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cmd, stdout, _, sess := newTestSession(t)
		if err := runREPL(ctx, script("status"), cmd, config.NewConfig(), sess); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("expected no output, got %q", stdout.String())
		}
	})
}
