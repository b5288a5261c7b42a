// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docxfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoDocxOpener_MissingFile(t *testing.T) {
	_, err := GoDocxOpener{}.Open(filepath.Join(t.TempDir(), "absent.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.docx")
}

func TestGoDocxOpener_NotAZipArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0o644))

	_, err := GoDocxOpener{}.Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.docx")
}

func TestDocumentSnapshot(t *testing.T) {
	d := &document{
		paragraphs: []string{"first", "", "second"},
		tables:     []Table{{{"a", "b"}, {"c", "d"}}},
	}

	assert.Equal(t, []string{"first", "", "second"}, d.Paragraphs())
	require.Len(t, d.Tables(), 1)
	assert.Equal(t, Table{{"a", "b"}, {"c", "d"}}, d.Tables()[0])
}
