// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the stat-q extraction
// pipeline.
package types

// ExtractionStatus indicates the outcome of converting one questionnaire
// document to plain text.
type ExtractionStatus string

const (
	ExtractionDone   ExtractionStatus = "extracted"
	ExtractionFailed ExtractionStatus = "failed"
)

// FileResult records the outcome of processing a single source document.
// Results are printed as they happen; they are collected only when the run
// report is requested.
type FileResult struct {
	// File is the source entry name (basename, not the full path).
	File string `json:"file" yaml:"file"`

	// Status is the per-file outcome.
	Status ExtractionStatus `json:"status" yaml:"status"`

	// Output is the derived output filename, set on success.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Error is the failure description, set on failure.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
