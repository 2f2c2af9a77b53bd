package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/chatwrapped/internal/pipeline"
)

// Session is the mutable state of one interactive session.
// It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	mode    model.Mode
	dataset *model.Dataset
	stats   model.Stats

	pipelineFactory func() *pipeline.Pipeline
	baseline        func() *model.Dataset
	notifier        Notifier
	logger          *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the receiver of user-facing messages.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPipelineFactory sets the function that builds the import pipeline.
// It is called once per import.
func WithPipelineFactory(fn func() *pipeline.Pipeline) Option {
	return func(s *Session) {
		if fn != nil {
			s.pipelineFactory = fn
		}
	}
}

// WithBaseline sets the provider of the Memory Mode dataset.
func WithBaseline(fn func() *model.Dataset) Option {
	return func(s *Session) {
		if fn != nil {
			s.baseline = fn
		}
	}
}

// New creates a session in Memory Mode.
func New(opts ...Option) *Session {
	s := &Session{
		baseline: model.Baseline,
		notifier: discard{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pipelineFactory == nil {
		logger := s.logger
		baseline := s.baseline
		s.pipelineFactory = func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(
				[]pipeline.Option{pipeline.WithLogger(logger)},
				pipeline.WithPipelineBaseline(baseline),
			)
		}
	}

	s.mode = model.ModeMemory
	s.dataset = s.baseline()
	return s
}

// Memory switches to Memory Mode, resets the counters and restores the
// built-in dataset.
func (s *Session) Memory() {
	s.toMemory()
	s.notifier.Notify(MsgMemoryMode)
}

// Reset is Memory with a different notification.
func (s *Session) Reset() {
	s.toMemory()
	s.notifier.Notify(MsgReset)
}

func (s *Session) toMemory() {
	ds := s.baseline()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = model.ModeMemory
	s.dataset = ds
	s.stats = model.Stats{}
}

// Data switches the mode flag to Data Mode. The dataset on display is kept
// until the next import.
func (s *Session) Data() {
	s.mu.Lock()
	s.mode = model.ModeData
	s.mu.Unlock()
	s.notifier.Notify(MsgDataMode)
}

// LoadDemo imports the built-in demo document.
func (s *Session) LoadDemo(ctx context.Context) error {
	run := model.NewDocumentRun(DemoSource, DemoDocument())
	if err := s.execute(ctx, run); err != nil {
		return err
	}
	s.notifier.Notify(MsgDemoLoaded)
	return nil
}

// Import reads r to the end and imports it as a JSON document named name.
// On failure the returned error wraps ErrImport and the session state is
// unchanged.
func (s *Session) Import(ctx context.Context, name string, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		s.notifier.Notify(MsgImportFailed)
		return fmt.Errorf("%w: failed to read %s: %w", ErrImport, name, err)
	}

	run := model.NewImportRun(name, raw)
	if err := s.execute(ctx, run); err != nil {
		s.notifier.Notify(MsgImportFailed)
		return err
	}
	s.notifier.Notify(MsgProcessed(len(run.Fragments)))
	return nil
}

// execute runs the pipeline outside the lock and swaps the state on success.
func (s *Session) execute(ctx context.Context, run *model.ImportRun) error {
	if err := s.pipelineFactory().Execute(ctx, run); err != nil {
		s.logger.Warn("import failed", "source", run.Source, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrImport, run.Source, err)
	}
	if run.Dataset == nil {
		return fmt.Errorf("%w: %s: pipeline produced no dataset", ErrImport, run.Source)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = model.ModeData
	s.dataset = run.Dataset
	s.stats = run.Dataset.Stats
	s.logger.Info("import applied",
		"source", run.Source,
		"fragments", s.stats.Fragments,
		"source_items", s.stats.SourceItems,
	)
	return nil
}

// Dataset returns a copy of the dataset on display.
func (s *Session) Dataset() *model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset.Clone()
}

// Mode returns the current mode.
func (s *Session) Mode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Stats returns the counters of the last import. They are zero in Memory
// Mode.
func (s *Session) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
