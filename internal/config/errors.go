package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate and Config.ValidateImport and
// can be checked with errors.Is.
var (
	// ErrNoInput is returned when an import is requested without any file.
	ErrNoInput = errors.New("no input specified: provide one or more JSON export files")

	// ErrInvalidBatchSize is returned when the number of concurrent imports
	// is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned when the format is not text, json or markdown.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json or markdown")

	// ErrInvalidMaxDepth is returned when the traversal depth is negative.
	ErrInvalidMaxDepth = errors.New("invalid max depth: must be non-negative")

	// ErrInvalidKeyLength is returned when the deduplication prefix is not positive.
	ErrInvalidKeyLength = errors.New("invalid key length: must be positive")
)
