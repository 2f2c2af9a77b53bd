// Package pipeline runs an import through an ordered list of steps.
//
// An import is represented by a model.ImportRun. The default pipeline decodes
// the raw JSON, extracts the text fragments and aggregates them into a
// dataset; each step reads what the previous one left on the run. Execution
// stops at the first failing step, so a document that cannot be decoded never
// produces a dataset.
//
// BatchProcessor imports many independent files concurrently. Every file gets
// its own run and a fresh pipeline built by a factory, and results are
// returned in input order.
package pipeline
