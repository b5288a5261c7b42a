// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts a directory of questionnaire documents into plain
// text files, one per source document, flattening table contents into
// delimited rows.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/QuantumsKid/stat-q/internal/docxfile"
	"github.com/QuantumsKid/stat-q/pkg/types"
)

const (
	// docSuffix selects source entries. Matching is case-sensitive.
	docSuffix = ".docx"
	// outSuffix replaces docSuffix in derived output names.
	outSuffix = ".txt"
)

// BatchResult holds the outcome of one extraction run.
type BatchResult struct {
	Extracted int
	Failed    int

	// Results lists every attempted file in processing order.
	Results []types.FileResult
}

// Total returns the number of files attempted.
func (r BatchResult) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any file failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run converts every .docx entry directly under srcDir into a .txt file
// under dstDir, printing one status line per file and a final summary line
// to w. dstDir is created if missing. Entries are processed in name order.
//
// Per-file failures (unparseable documents, write errors) are reported and
// skipped; only setup failures abort the run.
func Run(op docxfile.Opener, srcDir, dstDir string, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating destination directory %s: %w", dstDir, err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading source directory %s: %w", srcDir, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), docSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var result BatchResult
	for _, name := range names {
		fr := extractOne(op, srcDir, dstDir, name, w)
		switch fr.Status {
		case types.ExtractionDone:
			result.Extracted++
		case types.ExtractionFailed:
			result.Failed++
		}
		result.Results = append(result.Results, fr)
	}

	fmt.Fprintf(w, "\nAll extracted files saved to: %s\n", dstDir)
	return result, nil
}

// extractOne processes a single source entry: parse, render, write, report.
// Every failure is contained here and surfaced as an [ERROR] line.
func extractOne(op docxfile.Opener, srcDir, dstDir, name string, w io.Writer) types.FileResult {
	doc, err := op.Open(filepath.Join(srcDir, name))
	if err != nil {
		fmt.Fprintf(w, "[ERROR] Error extracting %s: %v\n", name, err)
		return types.FileResult{File: name, Status: types.ExtractionFailed, Error: err.Error()}
	}

	outName := OutputName(name)
	content := Render(doc)
	if err := os.WriteFile(filepath.Join(dstDir, outName), []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "[ERROR] Error extracting %s: %v\n", name, err)
		return types.FileResult{File: name, Status: types.ExtractionFailed, Error: err.Error()}
	}

	fmt.Fprintf(w, "[OK] Extracted: %s\n", name)
	return types.FileResult{File: name, Status: types.ExtractionDone, Output: outName}
}

// OutputName derives the output filename by replacing the trailing .docx
// suffix with .txt. Only the trailing suffix is replaced, so a name like
// my.docx.docx becomes my.docx.txt.
func OutputName(name string) string {
	return strings.TrimSuffix(name, docSuffix) + outSuffix
}

// Render serializes a document's content in the fixed two-section layout:
// a paragraphs section holding each non-empty trimmed paragraph on its own
// line, then a tables section holding every table row as its trimmed cell
// texts joined by " | ". Table boundaries are not marked.
func Render(doc docxfile.Document) string {
	var paragraphs []string
	for _, p := range doc.Paragraphs() {
		if t := strings.TrimSpace(p); t != "" {
			paragraphs = append(paragraphs, t)
		}
	}

	var rows []string
	for _, table := range doc.Tables() {
		for _, row := range table {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = strings.TrimSpace(c)
			}
			rows = append(rows, strings.Join(cells, " | "))
		}
	}

	var b strings.Builder
	b.WriteString("=== PARAGRAPHS ===\n")
	b.WriteString(strings.Join(paragraphs, "\n"))
	b.WriteString("\n\n=== TABLES ===\n")
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
