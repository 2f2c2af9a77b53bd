// Package model defines the core data structures used throughout chatwrapped.
//
// This package contains the following main types:
//   - Document: an order-preserving JSON value decoded from an export file
//   - Topic: the closed set of classification labels
//   - Dataset: the normalized "wrapped" dataset handed to the report writers
//   - ImportRun: the state carried through one import pipeline
//
// The built-in Memory Mode dataset is exposed only through Baseline, which
// returns a deep copy on every call. Callers may mutate the returned value
// freely.
package model
