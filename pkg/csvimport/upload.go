package csvimport

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/blumenos/gridadmin/pkg/serrors"
)

var (
	ErrWrongExtension = serrors.NewError("CSV_WRONG_EXTENSION", "Only .csv files are accepted", "")
	ErrTooLarge       = serrors.NewError("CSV_TOO_LARGE", "File exceeds the maximum upload size", "")
	ErrWrongType      = serrors.NewError("CSV_WRONG_TYPE", "File content is not CSV text", "")
)

// SniffUpload rejects uploads before any parsing: wrong extension, oversized
// file, or binary content masquerading as CSV. The reader is left positioned
// at the start of the file.
func SniffUpload(header *multipart.FileHeader, f multipart.File, maxSize int64) error {
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		return serrors.WithDetails(ErrWrongExtension, header.Filename)
	}
	if header.Size > maxSize {
		return serrors.WithDetails(ErrTooLarge, fmt.Sprintf("%d bytes, limit %d", header.Size, maxSize))
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if !mt.Is("text/csv") && !mt.Is("text/plain") && !mt.Is("application/csv") {
		return serrors.WithDetails(ErrWrongType, mt.String())
	}
	return nil
}
