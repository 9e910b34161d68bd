package sheetdump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/output"
)

const (
	listHeader  = "=== 工作表列表 ==="
	sheetHeader = "=== 工作表: %s ===\n"
)

// Dump writes the sheet list of the workbook at path followed by every
// sheet rendered as a text table, in declared order.
//
// Any failure stops the dump. Output written before the failure is
// flushed to w.
func Dump(w io.Writer, path string, opts Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}

	wb, err := Open(path, opts)
	if err != nil {
		return err
	}
	defer wb.Close()

	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintln(bw, listHeader)
	fmt.Fprintln(bw, output.FormatList(wb.SheetNames))
	fmt.Fprintln(bw)

	tableOpts := opts.tableOptions()
	for _, sheetName := range wb.SheetNames {
		frame, err := wb.Frame(sheetName)
		if err != nil {
			return NewSheetError(sheetName, err)
		}

		fmt.Fprintf(bw, sheetHeader, sheetName)
		if err := output.RenderTable(bw, frame, tableOpts); err != nil {
			return NewSheetError(sheetName, err)
		}
		fmt.Fprintln(bw)
	}

	return nil
}
