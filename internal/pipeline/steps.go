package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/chatwrapped/internal/aggregate"
	"github.com/nao1215/chatwrapped/internal/extract"
	"github.com/nao1215/chatwrapped/internal/model"
)

// Step names as recorded in ImportRun.PerformedSteps.
const (
	StepDecode    = "decode"
	StepExtract   = "extract"
	StepAggregate = "aggregate"
)

// ErrNoDocument is returned by steps that need a decoded document when the
// run has none.
var ErrNoDocument = errors.New("run has no decoded document")

// DecodeStep parses run.Raw into run.Document.
// A run that already carries a document is left untouched.
type DecodeStep struct {
	logger *slog.Logger
}

// NewDecodeStep creates a decode step.
func NewDecodeStep(logger *slog.Logger) *DecodeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DecodeStep{logger: logger}
}

// Name returns the step name.
func (s *DecodeStep) Name() string {
	return StepDecode
}

// Do executes the decode step.
func (s *DecodeStep) Do(_ context.Context, run *model.ImportRun) error {
	if run.Document != nil {
		s.logger.Debug("document already decoded", "source", run.Source)
		return nil
	}

	doc, err := model.ParseDocument(run.Raw)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", run.Source, err)
	}
	run.Document = doc
	s.logger.Debug("document decoded",
		"source", run.Source,
		"bytes", len(run.Raw),
		"root", doc.Kind.String(),
	)
	return nil
}

// ExtractStep collects the text fragments and the source item counter.
type ExtractStep struct {
	extractor *extract.Extractor
	logger    *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractor sets the extractor used by the step.
func WithExtractor(e *extract.Extractor) ExtractStepOption {
	return func(s *ExtractStep) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewExtractStep creates an extract step with the default extractor.
func NewExtractStep(opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		extractor: extract.New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return StepExtract
}

// Do executes the extract step.
func (s *ExtractStep) Do(_ context.Context, run *model.ImportRun) error {
	if run.Document == nil {
		return ErrNoDocument
	}

	run.Fragments = s.extractor.Extract(run.Document)
	run.SourceItems = model.SourceItemCount(run.Document)

	s.logger.Debug("fragments extracted",
		"source", run.Source,
		"fragments", len(run.Fragments),
		"source_items", run.SourceItems,
	)
	return nil
}

// AggregateStep turns the fragments of a run into a dataset.
type AggregateStep struct {
	baseline func() *model.Dataset
	logger   *slog.Logger
}

// AggregateStepOption configures an AggregateStep.
type AggregateStepOption func(*AggregateStep)

// WithBaseline sets the provider of the dataset the results are merged into.
func WithBaseline(fn func() *model.Dataset) AggregateStepOption {
	return func(s *AggregateStep) {
		if fn != nil {
			s.baseline = fn
		}
	}
}

// WithAggregateLogger sets a custom logger for the aggregate step.
func WithAggregateLogger(logger *slog.Logger) AggregateStepOption {
	return func(s *AggregateStep) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAggregateStep creates an aggregate step merging into model.Baseline.
func NewAggregateStep(opts ...AggregateStepOption) *AggregateStep {
	s := &AggregateStep{
		baseline: model.Baseline,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return StepAggregate
}

// Do executes the aggregate step. Zero fragments is not an error.
func (s *AggregateStep) Do(_ context.Context, run *model.ImportRun) error {
	tally := aggregate.Count(run.Fragments)
	run.TopicCounts = tally.Topics
	run.Dataset = aggregate.Merge(tally, s.baseline(), run.SourceItems)

	s.logger.Debug("dataset aggregated",
		"source", run.Source,
		"fragments", tally.Fragments,
		"words", len(run.Dataset.Voice.Words),
	)
	return nil
}

// DefaultPipelineConfig holds the settings of the default import pipeline.
type DefaultPipelineConfig struct {
	// MaxDepth is the deepest nesting level the extractor visits.
	MaxDepth int

	// KeyLength is the number of leading runes used to detect duplicates.
	KeyLength int

	// Baseline provides the dataset computed panels are merged into.
	Baseline func() *model.Dataset
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineMaxDepth sets the extraction depth limit.
func WithPipelineMaxDepth(depth int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.MaxDepth = depth
	}
}

// WithPipelineKeyLength sets the duplicate key length.
func WithPipelineKeyLength(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.KeyLength = n
	}
}

// WithPipelineBaseline sets the baseline provider.
func WithPipelineBaseline(fn func() *model.Dataset) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Baseline = fn
	}
}

// DefaultPipeline creates the standard decode, extract, aggregate pipeline.
//
// pipelineOpts configure the pipeline itself (WithLogger, ...); configOpts
// configure the steps. The pipeline logger is shared with the steps.
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		MaxDepth:  extract.DefaultMaxDepth,
		KeyLength: extract.DefaultKeyLength,
		Baseline:  model.Baseline,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	extractor := extract.New(
		extract.WithMaxDepth(cfg.MaxDepth),
		extract.WithKeyLength(cfg.KeyLength),
	)

	p.AddSteps(
		NewDecodeStep(p.logger),
		NewExtractStep(
			WithExtractor(extractor),
			WithExtractLogger(p.logger),
		),
		NewAggregateStep(
			WithBaseline(cfg.Baseline),
			WithAggregateLogger(p.logger),
		),
	)

	return p
}
