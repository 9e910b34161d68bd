package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// Justify selects cell alignment within a column.
type Justify string

const (
	// JustifyLeft pads cells on the right.
	JustifyLeft Justify = "left"
	// JustifyRight pads cells on the left.
	JustifyRight Justify = "right"
)

// columnSeparator sits between adjacent columns.
const columnSeparator = "  "

var cellEscaper = strings.NewReplacer("\t", `\t`, "\r", `\r`, "\n", `\n`)

// TableOptions configures RenderTable.
type TableOptions struct {
	Justify Justify
	// Width measures cell text; nil means RuneWidth.
	Width WidthFunc
}

// RenderTable writes frame as a column-aligned text table without row indices.
// Each line ends with a newline and carries no trailing spaces.
func RenderTable(w io.Writer, frame models.Frame, opts TableOptions) error {
	if frame.IsEmpty() {
		_, err := fmt.Fprintf(w, "Empty DataFrame\nColumns: [%s]\nIndex: []\n", strings.Join(escapeCells(frame.Columns), ", "))
		return err
	}

	measure := opts.Width
	if measure == nil {
		measure = RuneWidth
	}

	header := escapeCells(frame.Columns)
	body := make([][]string, len(frame.Rows))
	for i, row := range frame.Rows {
		body[i] = escapeCells(row)
	}

	widths := make([]int, len(header))
	for col, label := range header {
		widths[col] = measure(label)
	}
	for _, row := range body {
		for col, cell := range row {
			if n := measure(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}

	if err := writeLine(w, header, widths, opts.Justify, measure); err != nil {
		return err
	}
	for _, row := range body {
		if err := writeLine(w, row, widths, opts.Justify, measure); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, cells []string, widths []int, justify Justify, measure WidthFunc) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i], justify, measure)
	}
	line := strings.TrimRight(strings.Join(parts, columnSeparator), " ")
	_, err := io.WriteString(w, line+"\n")
	return err
}

// escapeCells keeps control characters from breaking line alignment.
func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = cellEscaper.Replace(cell)
	}
	return out
}
