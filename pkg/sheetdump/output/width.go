// Package output renders workbooks as plain text.
package output

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// WidthFunc measures how many columns a string occupies.
type WidthFunc func(s string) int

// RuneWidth counts one column per rune.
func RuneWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// EastAsianWidth counts wide and fullwidth runes as two columns.
func EastAsianWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// pad fills s with spaces up to w columns on the side opposite to justify.
func pad(s string, w int, justify Justify, measure WidthFunc) string {
	gap := w - measure(s)
	if gap <= 0 {
		return s
	}
	if justify == JustifyRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
