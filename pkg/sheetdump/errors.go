package sheetdump

import (
	"errors"
	"fmt"
)

// ErrUsage indicates the workbook path argument is missing.
var ErrUsage = errors.New("missing workbook path")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not a readable workbook.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrPasswordRequired indicates an encrypted workbook was opened without a password.
var ErrPasswordRequired = errors.New("workbook is encrypted, a password is required")

// LoadError represents a failure to open a workbook.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workbook %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Err:  err,
	}
}

// SheetError represents a failure to load or render one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Err:       err,
	}
}
