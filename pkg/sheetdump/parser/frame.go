package parser

import (
	"fmt"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
)

// BuildFrame turns a raw sheet grid into a Frame.
//
// Blank rows are skipped, the first remaining row becomes the header and
// every data row is padded with "" to the header width. Empty header
// cells are named "Unnamed: <index>" and repeated names get ".N" suffixes.
func BuildFrame(rows [][]string) models.Frame {
	var kept [][]string
	for _, row := range rows {
		if !isBlankRow(row) {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return models.Frame{}
	}

	width := maxWidth(kept)
	frame := models.Frame{
		Columns: headerLabels(kept[0], width),
		Rows:    make([][]string, 0, len(kept)-1),
	}
	for _, row := range kept[1:] {
		cells := make([]string, width)
		copy(cells, row)
		frame.Rows = append(frame.Rows, cells)
	}
	return frame
}

// headerLabels names width columns from the header row.
func headerLabels(header []string, width int) []string {
	labels := make([]string, width)
	for i := range labels {
		if i < len(header) && header[i] != "" {
			labels[i] = header[i]
		} else {
			labels[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}
	return dedupeLabels(labels)
}

// dedupeLabels renames repeats to "name.1", "name.2", ... skipping any
// suffixed name that is already taken.
func dedupeLabels(labels []string) []string {
	counts := make(map[string]int, len(labels))
	out := make([]string, len(labels))
	for i, label := range labels {
		n := counts[label]
		for n > 0 {
			counts[label] = n + 1
			label = fmt.Sprintf("%s.%d", label, n)
			n = counts[label]
		}
		out[i] = label
		counts[label] = n + 1
	}
	return out
}
