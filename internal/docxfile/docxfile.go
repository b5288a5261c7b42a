// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docxfile reads the paragraph and table content of Word (.docx)
// documents. It exposes exactly the read surface the extraction stage needs;
// container parsing is delegated to the go-docx library behind the Opener
// interface so tests can substitute fixed documents.
package docxfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Table is an ordered sequence of rows, each an ordered sequence of cell
// texts. Cell texts are raw; callers trim.
type Table [][]string

// Document provides read access to the textual content of one parsed
// document. Both sequences preserve source order.
type Document interface {
	// Paragraphs returns the text of every body paragraph, untrimmed,
	// including empty ones.
	Paragraphs() []string

	// Tables returns every body table.
	Tables() []Table
}

// Opener parses a document file into a Document. Different backends (the
// go-docx library, test fakes) implement this interface.
type Opener interface {
	Open(path string) (Document, error)
}

// GoDocxOpener parses .docx files with github.com/fumiama/go-docx. The file
// handle is closed before Open returns; the returned Document is a plain
// in-memory snapshot.
type GoDocxOpener struct{}

// Open reads and parses the document at path.
func (GoDocxOpener) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	parsed, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}

	var d document
	for _, item := range parsed.Document.Body.Items {
		switch t := item.(type) {
		case *docx.Paragraph:
			d.paragraphs = append(d.paragraphs, t.String())
		case *docx.Table:
			d.tables = append(d.tables, flattenTable(t))
		}
	}
	return &d, nil
}

// flattenTable converts a go-docx table into rows of cell texts. A cell
// holding several paragraphs yields their texts joined by newline, matching
// how word processors render multi-paragraph cells.
func flattenTable(t *docx.Table) Table {
	rows := make(Table, 0, len(t.TableRows))
	for _, row := range t.TableRows {
		cells := make([]string, 0, len(row.TableCells))
		for _, cell := range row.TableCells {
			texts := make([]string, 0, len(cell.Paragraphs))
			for _, p := range cell.Paragraphs {
				texts = append(texts, p.String())
			}
			cells = append(cells, strings.Join(texts, "\n"))
		}
		rows = append(rows, cells)
	}
	return rows
}

// document is the in-memory snapshot returned by GoDocxOpener.
type document struct {
	paragraphs []string
	tables     []Table
}

func (d *document) Paragraphs() []string { return d.paragraphs }
func (d *document) Tables() []Table      { return d.tables }
