// Package models defines data structures for spreadsheet dumping.
package models

// Workbook represents an opened workbook's identity and sheet order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Format is the detected container format (e.g. "xlsx", "xls").
	Format string `json:"format"`
	// SheetNames lists sheet names in the order the workbook declares them.
	SheetNames []string `json:"sheet_names"`
}
