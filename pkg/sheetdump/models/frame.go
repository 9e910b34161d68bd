package models

// Frame is a sheet's grid after header inference.
// Every row in Rows has exactly len(Columns) cells; absent cells hold "".
type Frame struct {
	// Columns are the column labels taken from the header row.
	Columns []string `json:"columns"`
	// Rows are the data rows below the header row.
	Rows [][]string `json:"rows"`
}

// IsEmpty reports whether the frame has no data rows.
func (f Frame) IsEmpty() bool {
	return len(f.Rows) == 0
}
