package model

import "time"

// ImportRun carries the state of one import through the pipeline.
// Each step reads the fields produced by the previous ones.
type ImportRun struct {
	// Source names the input, typically a file path or "demo".
	Source string `json:"source"`

	// Raw is the undecoded input. It may be nil when Document is preset.
	Raw []byte `json:"-"`

	// Document is the decoded input.
	Document *Document `json:"-"`

	// Fragments are the extracted text fragments in first-visited order.
	Fragments []string `json:"-"`

	// SourceItems is the best-effort source item counter.
	SourceItems int `json:"sourceItems"`

	// TopicCounts holds the per-topic fragment counts in declaration order.
	TopicCounts []TopicCount `json:"topicCounts,omitempty"`

	// Dataset is the normalized output. Nil until the aggregate step succeeds.
	Dataset *Dataset `json:"dataset,omitempty"`

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string `json:"performedSteps"`

	// Error is the error of the failed step, if any.
	Error error `json:"-"`

	// ErrorMessage is Error as text, kept for serialization.
	ErrorMessage string `json:"error,omitempty"`

	// Cancelled is set when the context was cancelled between steps.
	Cancelled bool `json:"cancelled,omitempty"`

	// StartedAt is when the run was created.
	StartedAt time.Time `json:"startedAt"`
}

// NewImportRun creates a run for raw input bytes.
func NewImportRun(source string, raw []byte) *ImportRun {
	return &ImportRun{
		Source:         source,
		Raw:            raw,
		PerformedSteps: make([]string, 0),
		StartedAt:      time.Now(),
	}
}

// NewDocumentRun creates a run for an already decoded document.
func NewDocumentRun(source string, doc *Document) *ImportRun {
	run := NewImportRun(source, nil)
	run.Document = doc
	return run
}

// Succeeded reports whether the run produced a dataset without error.
func (r *ImportRun) Succeeded() bool {
	return r.Error == nil && !r.Cancelled && r.Dataset != nil
}
