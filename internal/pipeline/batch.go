package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/chatwrapped/internal/model"
	"golang.org/x/sync/errgroup"
)

// Loader reads the raw bytes of a source.
type Loader func(ctx context.Context, source string) ([]byte, error)

// ReadFile is the default Loader. It treats the source as a file path.
func ReadFile(_ context.Context, source string) ([]byte, error) {
	data, err := os.ReadFile(source) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}

// DefaultConcurrency is the number of sources imported at the same time.
const DefaultConcurrency = 4

// BatchProcessor imports multiple independent sources concurrently.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each source.
	pipelineFactory func() *Pipeline

	loader      Loader
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent imports.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLoader replaces the function used to read each source.
func WithLoader(l Loader) BatchOption {
	return func(b *BatchProcessor) {
		if l != nil {
			b.loader = l
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
// pipelineFactory is called once per source.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		loader:          ReadFile,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch imports every source and returns one run per source, in input
// order. A source that cannot be read or decoded yields a run with Error set;
// it does not stop the others. The returned error is non-nil only when the
// context was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, sources []string) ([]*model.ImportRun, error) {
	bp.logger.Info("starting batch import",
		"total_sources", len(sources),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each callback writes only its own index.
	runs := make([]*model.ImportRun, len(sources))
	err := bp.ProcessBatchWithCallback(ctx, sources, func(run *model.ImportRun, index int) {
		runs[index] = run
	})

	for i, run := range runs {
		if run == nil {
			run = model.NewImportRun(sources[i], nil)
			run.Cancelled = true
			runs[i] = run
		}
	}

	bp.logger.Info("batch import complete",
		"total_sources", len(sources),
		"elapsed", time.Since(startTime),
	)

	return runs, err
}

// ProcessBatchWithCallback imports every source and calls callback with each
// finished run and its index in sources, as soon as that run finishes.
// Sources skipped after cancellation get no callback. The callback runs on
// the importing goroutine and must be safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	sources []string,
	callback func(run *model.ImportRun, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("importing source",
				"source", source,
				"index", i+1,
				"total", len(sources),
			)

			callback(bp.process(ctx, source), i)
			return nil
		})
	}

	return g.Wait()
}

// process loads and imports one source.
func (bp *BatchProcessor) process(ctx context.Context, source string) *model.ImportRun {
	raw, err := bp.loader(ctx, source)
	if err != nil {
		bp.logger.Warn("load failed", "source", source, "error", err)
		run := model.NewImportRun(source, nil)
		run.Error = err
		run.ErrorMessage = err.Error()
		return run
	}

	run := model.NewImportRun(source, raw)
	if err := bp.pipelineFactory().Execute(ctx, run); err != nil {
		bp.logger.Warn("import failed", "source", source, "error", err)
		return run
	}

	bp.logger.Info("import completed",
		"source", source,
		"fragments", len(run.Fragments),
	)
	return run
}
