package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
)

// DefaultCharset is the fallback code page for .xls files without one.
const DefaultCharset = "utf-8"

// maxXLSCols is the BIFF8 column limit.
const maxXLSCols = 256

type xlsSource struct {
	wb     *xls.WorkBook
	closer io.Closer
	names  []string
	sheets map[string]*xls.WorkSheet
}

// OpenXLS opens a legacy BIFF workbook with extrame/xls.
// Decoder panics on malformed records are returned as errors.
func OpenXLS(path string, opts ReadOptions) (src Source, err error) {
	charset := opts.Charset
	if charset == "" {
		charset = DefaultCharset
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("decode xls: %v", r)
		}
		if err != nil {
			f.Close()
		}
	}()

	wb, err := xls.OpenReader(f, charset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no Workbook stream in container")
	}

	s := &xlsSource{
		wb:     wb,
		closer: f,
		sheets: make(map[string]*xls.WorkSheet),
	}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		s.names = append(s.names, sheet.Name)
		s.sheets[sheet.Name] = sheet
	}
	return s, nil
}

func (s *xlsSource) SheetList() []string {
	return s.names
}

func (s *xlsSource) Rows(sheetName string) (rows [][]string, err error) {
	sheet, ok := s.sheets[sheetName]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheetName)
	}

	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("decode sheet %q: %v", sheetName, r)
		}
	}()

	rows = make([][]string, 0, int(sheet.MaxRow)+1)
	for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
		row := rowAt(sheet, rowIdx)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// LastCol is one past the last cell. Rows without a ROW record
		// report 0 even when they hold cells.
		width := row.LastCol()
		if width == 0 {
			width = maxXLSCols
		}
		cells := make([]string, width)
		for colIdx := range cells {
			cells[colIdx] = row.Col(colIdx)
		}
		rows = append(rows, trimRow(cells))
	}
	return rows, nil
}

// rowAt returns nil for rows the sheet holds nothing for.
// WorkSheet.Row dereferences the missing row instead of returning nil.
func rowAt(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func (s *xlsSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
