package parser

import (
	"bytes"
	"errors"
	"io"

	"github.com/richardlehane/mscfb"
)

// Format identifies a spreadsheet container format.
type Format string

const (
	// FormatUnknown is anything that is not a supported workbook.
	FormatUnknown Format = "unknown"
	// FormatXLSX is a zipped OOXML workbook (.xlsx, .xlsm, .xltx).
	FormatXLSX Format = "xlsx"
	// FormatEncryptedXLSX is an OOXML workbook wrapped in an encrypted OLE2 container.
	FormatEncryptedXLSX Format = "xlsx-encrypted"
	// FormatXLS is a legacy BIFF workbook stored in an OLE2 container.
	FormatXLS Format = "xls"
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat sniffs the container format from the leading bytes of r.
// OLE2 containers are opened to tell legacy workbooks from encrypted OOXML.
func DetectFormat(r io.ReaderAt) (Format, error) {
	head := make([]byte, len(oleMagic))
	n, err := r.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return FormatUnknown, err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(head, oleMagic):
		return detectCompound(r)
	}
	return FormatUnknown, nil
}

// detectCompound walks the OLE2 directory looking for a workbook stream.
func detectCompound(r io.ReaderAt) (Format, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return FormatUnknown, err
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "Workbook", "Book":
			return FormatXLS, nil
		case "EncryptionInfo", "EncryptedPackage":
			return FormatEncryptedXLSX, nil
		}
	}
	return FormatUnknown, nil
}
