package report

import (
	"cmp"
	"io"
	"slices"
	"strconv"

	"github.com/nao1215/chatwrapped/internal/model"
)

// Writer renders a dataset to its destination.
type Writer interface {
	// Write outputs the dataset.
	// Returns the number of bytes written and any error encountered.
	Write(ds *model.Dataset) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the dataset to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(ds *model.Dataset) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(ds)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// DefaultBrandName is the name shown in the brand line.
const DefaultBrandName = "Dor"

// Brand returns the brand line for name. An empty name uses DefaultBrandName.
func Brand(name string) string {
	if name == "" {
		name = DefaultBrandName
	}
	return name + " · 12 החודשים האחרונים · Wrapped"
}

// counter formats a status counter. Zero means nothing was imported.
func counter(n int) string {
	if n == 0 {
		return "—"
	}
	return strconv.Itoa(n)
}

// rangeLabel returns the range badge of ds.
func rangeLabel(ds *model.Dataset) string {
	if ds.Meta.RangeLabel == "" {
		return model.DefaultRangeLabel
	}
	return ds.Meta.RangeLabel
}

// wordsByScore returns the words of ds ordered by descending score.
// Ties keep dataset order.
func wordsByScore(ds *model.Dataset) []model.WordStat {
	words := make([]model.WordStat, len(ds.Voice.Words))
	copy(words, ds.Voice.Words)
	slices.SortStableFunc(words, func(a, b model.WordStat) int {
		return cmp.Compare(b.S, a.S)
	})
	return words
}
