package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmolinero/biblioteca-api/internal/services"
)

// maxCoverSize is the upload limit for cover images.
const maxCoverSize = 5 << 20 // 5MB

var (
	errCoverTooLarge    = errors.New("cover image must not exceed 5MB")
	errCoverInvalidType = errors.New("cover must be a valid .jpg image")
)

// parseCoverUpload extracts and validates the optional "cover" file from
// a multipart form. The file must be image/jpeg with a .jpg extension
// and at most 5MB; violations are rejected here, before the catalog
// service is reached. Returns (nil, nil) when no cover was uploaded.
func parseCoverUpload(r *http.Request) (*services.CoverUpload, error) {
	file, header, err := r.FormFile("cover")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > maxCoverSize {
		return nil, errCoverTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" || header.Header.Get("Content-Type") != "image/jpeg" {
		return nil, errCoverInvalidType
	}

	data, err := io.ReadAll(io.LimitReader(file, maxCoverSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxCoverSize {
		return nil, errCoverTooLarge
	}

	return &services.CoverUpload{Ext: ext, Data: data}, nil
}

// formValuePtr reports a multipart form field as a pointer: nil when the
// field was not submitted at all, so partial updates can tell "omitted"
// apart from "set to empty".
func formValuePtr(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
