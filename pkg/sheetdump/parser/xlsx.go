package parser

import (
	"github.com/xuri/excelize/v2"
)

type xlsxSource struct {
	f *excelize.File
}

// OpenXLSX opens an OOXML workbook with excelize.
func OpenXLSX(path string, opts ReadOptions) (Source, error) {
	f, err := excelize.OpenFile(path, excelize.Options{
		Password:     opts.Password,
		RawCellValue: opts.RawValues,
	})
	if err != nil {
		return nil, err
	}
	return &xlsxSource{f: f}, nil
}

func (s *xlsxSource) SheetList() []string {
	return s.f.GetSheetList()
}

func (s *xlsxSource) Rows(sheetName string) ([][]string, error) {
	return s.f.GetRows(sheetName)
}

func (s *xlsxSource) Close() error {
	return s.f.Close()
}
