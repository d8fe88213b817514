package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type coverFile struct {
	fieldName   string
	fileName    string
	contentType string
	data        []byte
}

// newMultipartRequest builds a multipart/form-data request from plain
// fields plus an optional file part.
func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, file *coverFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		assert.NoError(t, writer.WriteField(name, value))
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+file.fieldName+`"; filename="`+file.fileName+`"`)
		header.Set("Content-Type", file.contentType)

		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(file.data)
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestParseCoverUpload(t *testing.T) {
	parse := func(t *testing.T, file *coverFile) (interface{}, error) {
		req := newMultipartRequest(t, http.MethodPost, "/books", map[string]string{"isbn": "111"}, file)
		assert.NoError(t, req.ParseMultipartForm(maxCoverSize+1<<20))
		return parseCoverUpload(req)
	}

	t.Run("no file present", func(t *testing.T) {
		cover, err := parse(t, nil)
		assert.NoError(t, err)
		assert.Nil(t, cover)
	})

	t.Run("valid jpeg", func(t *testing.T) {
		req := newMultipartRequest(t, http.MethodPost, "/books", nil, &coverFile{
			fieldName: "cover", fileName: "portada.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes"),
		})
		assert.NoError(t, req.ParseMultipartForm(maxCoverSize+1<<20))

		cover, err := parseCoverUpload(req)
		assert.NoError(t, err)
		assert.NotNil(t, cover)
		assert.Equal(t, ".jpg", cover.Ext)
		assert.Equal(t, []byte("jpeg-bytes"), cover.Data)
	})

	t.Run("uppercase extension is accepted", func(t *testing.T) {
		req := newMultipartRequest(t, http.MethodPost, "/books", nil, &coverFile{
			fieldName: "cover", fileName: "PORTADA.JPG", contentType: "image/jpeg", data: []byte("jpeg-bytes"),
		})
		assert.NoError(t, req.ParseMultipartForm(maxCoverSize+1<<20))

		cover, err := parseCoverUpload(req)
		assert.NoError(t, err)
		assert.NotNil(t, cover)
		assert.Equal(t, ".jpg", cover.Ext)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := parse(t, &coverFile{
			fieldName: "cover", fileName: "portada.png", contentType: "image/jpeg", data: []byte("png"),
		})
		assert.ErrorIs(t, err, errCoverInvalidType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		_, err := parse(t, &coverFile{
			fieldName: "cover", fileName: "portada.jpg", contentType: "image/png", data: []byte("png"),
		})
		assert.ErrorIs(t, err, errCoverInvalidType)
	})

	t.Run("oversize file", func(t *testing.T) {
		_, err := parse(t, &coverFile{
			fieldName: "cover", fileName: "portada.jpg", contentType: "image/jpeg",
			data: bytes.Repeat([]byte("x"), maxCoverSize+1),
		})
		assert.ErrorIs(t, err, errCoverTooLarge)
	})
}

func TestFormValuePtr(t *testing.T) {
	req := newMultipartRequest(t, http.MethodPut, "/books/111", map[string]string{
		"title":  "Nuevo título",
		"author": "",
	}, nil)
	assert.NoError(t, req.ParseMultipartForm(maxCoverSize+1<<20))

	title := formValuePtr(req, "title")
	assert.NotNil(t, title)
	assert.Equal(t, "Nuevo título", *title)

	// Submitted empty is not the same as omitted.
	author := formValuePtr(req, "author")
	assert.NotNil(t, author)
	assert.Equal(t, "", *author)

	assert.Nil(t, formValuePtr(req, "publisher"))
}

func TestFormValuePtr_NoMultipartForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/books/111", strings.NewReader(""))
	assert.Nil(t, formValuePtr(req, "title"))
}
