package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/chatwrapped/internal/config"
	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/chatwrapped/internal/report"
	"github.com/spf13/cobra"
)

// addReportFlags registers the flags shared by every command that renders a
// dataset.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", config.DefaultName,
		"Name shown in the brand line")
	cmd.Flags().StringP("format", "F", config.FormatText,
		"Report format: text, json or markdown")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().Bool("compact", false,
		"Do not indent JSON output")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the report to stdout")
}

// addImportFlags registers the flags that tune the import pipeline.
func addImportFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of files imported concurrently")
	cmd.Flags().Int("max-depth", config.DefaultMaxDepth,
		"Deepest document level visited during extraction")
	cmd.Flags().Int("key-length", config.DefaultKeyLength,
		"Number of leading characters that identify a duplicate fragment")
}

// getConfigFlag retrieves the config flag from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// buildConfig creates a Config from defaults, the configuration file, the
// environment and the flags the user set, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.LogJSON = getLogJSONFlag(cmd)
	cfg.ConfigFilePath = getConfigFlag(cmd)

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg, os.LookupEnv)

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Inputs = args
	return cfg, nil
}

// applyFlags copies the flags that were set on the command line onto cfg.
// Flags the command does not define are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("name") {
		if cfg.Name, err = flags.GetString("name"); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Lookup("json") != nil {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return err
		}
	}
	if flags.Lookup("markdown") != nil {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return err
		}
	}
	if flags.Changed("compact") {
		compact, err := flags.GetBool("compact")
		if err != nil {
			return err
		}
		cfg.PrettyPrint = !compact
	}
	if flags.Changed("output") {
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	if flags.Changed("tee") {
		if cfg.TeeReport, err = flags.GetBool("tee"); err != nil {
			return err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return err
		}
	}
	if flags.Changed("max-depth") {
		if cfg.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return err
		}
	}
	if flags.Changed("key-length") {
		if cfg.KeyLength, err = flags.GetInt("key-length"); err != nil {
			return err
		}
	}

	return nil
}

// newReportWriter returns the writer for the effective report format.
// mode is the session mode shown by the text report.
func newReportWriter(cfg *config.Config, output io.Writer, mode model.Mode) report.Writer {
	switch cfg.ReportFormat() {
	case config.FormatJSON:
		return newJSONWriter(cfg, output)
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output, report.WithMarkdownBrand(cfg.Name))
	default:
		return report.NewSimpleWriter(output, report.WithBrand(cfg.Name), report.WithMode(mode))
	}
}

func newJSONWriter(cfg *config.Config, output io.Writer) *report.JSONWriter {
	if cfg.PrettyPrint {
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	}
	return report.NewJSONWriter(output)
}

// openOutput returns the report destination: the report file when one is
// configured, stdout otherwise. The returned close function is never nil.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports are derived from private chats, so only the owner may read them.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// teeing reports whether the report goes to both the report file and stdout.
func teeing(cfg *config.Config) bool {
	return cfg.TeeReport && cfg.ReportFile != ""
}

// datasetWriter returns the writer for output, fanned out to stdout as well
// when the report is teed.
func datasetWriter(cmd *cobra.Command, cfg *config.Config, output io.Writer, mode model.Mode) report.Writer {
	w := newReportWriter(cfg, output, mode)
	if !teeing(cfg) {
		return w
	}
	return report.NewMultiWriter(w, newReportWriter(cfg, cmd.OutOrStdout(), mode))
}

// outputReport renders ds in the configured format to the configured
// destination.
func outputReport(cmd *cobra.Command, cfg *config.Config, ds *model.Dataset, mode model.Mode) error {
	output, closeFn, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}

	if _, err := datasetWriter(cmd, cfg, output, mode).Write(ds); err != nil {
		_ = closeFn()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeFn()
}
