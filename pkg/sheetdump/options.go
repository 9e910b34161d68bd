// Package sheetdump prints every sheet of a spreadsheet workbook as text.
package sheetdump

import (
	"fmt"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/output"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

// Options configures how workbooks are read and rendered.
type Options struct {
	// Password decrypts encrypted OOXML workbooks.
	Password string
	// Charset overrides the code page of legacy .xls files.
	// If empty, utf-8 is used.
	Charset string
	// RawValues prints stored cell values instead of number-formatted text.
	RawValues bool
	// Justify aligns cells within their column (left or right).
	Justify output.Justify
	// EastAsianWidth measures wide and fullwidth characters as two columns.
	EastAsianWidth bool
}

// DefaultOptions returns default dump options.
func DefaultOptions() Options {
	return Options{
		Justify: output.JustifyLeft,
	}
}

// Validate reports option values that cannot be honored.
func (o Options) Validate() error {
	switch o.Justify {
	case output.JustifyLeft, output.JustifyRight:
		return nil
	default:
		return fmt.Errorf("invalid justify: %s (must be left or right)", o.Justify)
	}
}

func (o Options) readOptions() parser.ReadOptions {
	return parser.ReadOptions{
		Password:  o.Password,
		Charset:   o.Charset,
		RawValues: o.RawValues,
	}
}

func (o Options) tableOptions() output.TableOptions {
	opts := output.TableOptions{
		Justify: o.Justify,
		Width:   output.RuneWidth,
	}
	if o.EastAsianWidth {
		opts.Width = output.EastAsianWidth
	}
	return opts
}
