package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "chatwrapped"

	// DefaultName is the name shown in the brand line.
	DefaultName = "Dor"

	// DefaultBatchSize is the number of files imported concurrently.
	// Imports are CPU bound, so a small number is enough.
	DefaultBatchSize = 4

	// DefaultMaxDepth is the deepest document level visited during extraction.
	DefaultMaxDepth = 18

	// DefaultKeyLength is the number of leading runes that identify a fragment.
	DefaultKeyLength = 220
)

// Report formats.
const (
	// FormatText is the sectioned terminal report.
	FormatText = "text"
	// FormatJSON is the dataset as JSON.
	FormatJSON = "json"
	// FormatMarkdown is the Markdown report with a Mermaid pie chart.
	FormatMarkdown = "markdown"
)

// Formats returns the supported report formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown}
}

// Config holds all configuration options for chatwrapped.
// It is populated from defaults, the configuration file, the environment and
// CLI flags, in that order, and passed down explicitly.
type Config struct {
	// Name is the name shown in the brand line of the reports.
	Name string

	// Format is the report format used when neither JSONReport nor
	// MarkdownReport is set. One of FormatText, FormatJSON, FormatMarkdown.
	Format string

	// JSONReport selects the JSON report. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects the Markdown report. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// PrettyPrint indents JSON output.
	PrettyPrint bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// TeeReport also writes the report to stdout when ReportFile is set.
	TeeReport bool

	// Inputs are the JSON export files to import.
	Inputs []string

	// BatchSize is the number of files imported concurrently.
	BatchSize int

	// MaxDepth is the deepest document level visited during extraction.
	MaxDepth int

	// KeyLength is the deduplication prefix length in runes.
	KeyLength int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON writes log records as JSON instead of text.
	LogJSON bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .chatwrapped in the current directory,
	// the XDG config directory and the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Name:        DefaultName,
		Format:      FormatText,
		PrettyPrint: true,
		BatchSize:   DefaultBatchSize,
		MaxDepth:    DefaultMaxDepth,
		KeyLength:   DefaultKeyLength,
	}
}

// XDGConfigDir returns the XDG config directory for chatwrapped.
// On Linux: ~/.config/chatwrapped
// On macOS: ~/Library/Application Support/chatwrapped
// On Windows: %APPDATA%\chatwrapped
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the configuration file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// ReportFormat returns the effective report format. The --json and
// --markdown switches take precedence over Format.
func (c *Config) ReportFormat() string {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	case c.Format == "":
		return FormatText
	default:
		return strings.ToLower(c.Format)
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	switch c.ReportFormat() {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return ErrUnknownFormat
	}

	if c.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}

	if c.KeyLength <= 0 {
		return ErrInvalidKeyLength
	}

	return nil
}

// ValidateImport validates the configuration of an import, which also
// needs at least one input file.
func (c *Config) ValidateImport() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	return c.Validate()
}
