package app

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectContentType returns the MIME type of input and a new reader
// containing the whole data from input.
func DetectContentType(input io.Reader) (string, io.Reader, error) {
	// header will store the bytes mimetype uses for detection.
	header := bytes.NewBuffer(nil)

	// After DetectReader, the data read from input is copied into header.
	mtype, err := mimetype.DetectReader(io.TeeReader(input, header))
	if err != nil {
		return "", nil, err
	}

	// Concatenate back the header to the rest of the file.
	recycled := io.MultiReader(header, input)

	return mtype.String(), recycled, nil
}

// IsCSV sniffs the uploaded file and rewinds it.
func IsCSV(f multipart.File) (bool, error) {
	mtype, _, err := DetectContentType(f)
	if err != nil {
		return false, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	return strings.HasPrefix(mtype, "text/csv") || strings.HasPrefix(mtype, "text/plain"), nil
}
