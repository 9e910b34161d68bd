package sheetdump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

// Workbook is an opened workbook ready for per-sheet loading.
type Workbook struct {
	models.Workbook
	src parser.Source
}

// Open opens the workbook at path, detecting its format from content.
// All failures are returned as *LoadError.
func Open(path string, opts Options) (*Workbook, error) {
	format, err := detect(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	log.WithFields(log.Fields{"path": path, "format": format}).Debug("detected workbook format")

	var src parser.Source
	switch format {
	case parser.FormatEncryptedXLSX:
		if opts.Password == "" {
			return nil, NewLoadError(path, ErrPasswordRequired)
		}
		src, err = parser.OpenXLSX(path, opts.readOptions())
	case parser.FormatXLSX:
		src, err = parser.OpenXLSX(path, opts.readOptions())
	case parser.FormatXLS:
		src, err = parser.OpenXLS(path, opts.readOptions())
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	wb := &Workbook{
		Workbook: models.Workbook{
			BookName:   filepath.Base(path),
			Format:     string(format),
			SheetNames: src.SheetList(),
		},
		src: src,
	}
	log.WithField("sheets", len(wb.SheetNames)).Debug("opened workbook")
	return wb, nil
}

func detect(path string) (parser.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return parser.FormatUnknown, ErrFileNotFound
		}
		return parser.FormatUnknown, err
	}
	defer f.Close()

	format, err := parser.DetectFormat(f)
	if err != nil {
		return parser.FormatUnknown, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return format, nil
}

// Frame loads a sheet and infers its header and columns.
func (wb *Workbook) Frame(sheetName string) (models.Frame, error) {
	rows, err := wb.src.Rows(sheetName)
	if err != nil {
		return models.Frame{}, err
	}
	frame := parser.BuildFrame(rows)
	log.WithFields(log.Fields{
		"sheet":   sheetName,
		"columns": len(frame.Columns),
		"rows":    len(frame.Rows),
	}).Debug("loaded sheet")
	return frame, nil
}

// Close releases the underlying file.
func (wb *Workbook) Close() error {
	return wb.src.Close()
}
