package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestOpenXLSMissingFile(t *testing.T) {
	_, err := OpenXLS(filepath.Join(t.TempDir(), "missing.xls"), ReadOptions{})
	assert.Error(t, err)
}

func TestOpenXLSGarbage(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "garbage.xls")
	writeFile(t, tmpFile, []byte("this is plain text, not a BIFF workbook"))

	src, err := OpenXLS(tmpFile, ReadOptions{})
	assert.Error(t, err)
	assert.Nil(t, src)
}

func TestXLSSourceUnknownSheet(t *testing.T) {
	src := &xlsSource{}

	_, err := src.Rows("Sheet1")
	assert.Error(t, err)
	assert.NoError(t, src.Close())
	assert.Empty(t, src.SheetList())
}

func TestOpenXLS(t *testing.T) {
	src, err := OpenXLS(filepath.Join("testdata", "table.xls"), ReadOptions{})
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"Table"}, src.SheetList())

	rows, err := src.Rows("Table")
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, []string{"Code", "Name", "Description"}, rows[0])
	assert.Equal(t, []string{"code1", "name1", "description1"}, rows[1])
	assert.Equal(t, []string{"code11", "name11", "description11"}, rows[11])
	for i, row := range rows {
		assert.Len(t, row, 3, "row %d", i)
	}

	frame := BuildFrame(rows)
	assert.Equal(t, []string{"Code", "Name", "Description"}, frame.Columns)
	assert.Len(t, frame.Rows, 11)
}
