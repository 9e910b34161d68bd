// Package parser provides spreadsheet container readers and grid utilities.
package parser

// Source reads sheet grids from one opened workbook.
type Source interface {
	// SheetList returns sheet names in the order the workbook declares them.
	SheetList() []string
	// Rows returns the cell text of a sheet, row by row.
	// Rows may be ragged; missing trailing cells are absent, not "".
	Rows(sheetName string) ([][]string, error)
	// Close releases the underlying file.
	Close() error
}

// ReadOptions configures how a Source decodes cells.
type ReadOptions struct {
	// Password decrypts encrypted OOXML workbooks.
	Password string
	// Charset overrides the code page used by legacy .xls files.
	Charset string
	// RawValues returns stored values instead of number-formatted text.
	RawValues bool
}
