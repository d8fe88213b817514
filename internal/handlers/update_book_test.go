package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dmolinero/biblioteca-api/internal/services"
)

func TestUpdateBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookUpdater(ctrl)

	r := chi.NewRouter()
	r.Put("/books/{bookIsbn}", NewUpdateBookHandler(mockSvc))

	t.Run("partial update distinguishes omitted from empty", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "111", gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ interface{}, _ string, in services.BookUpdateInput, _ *services.CoverUpload) error {
				assert.NotNil(t, in.Title)
				assert.Equal(t, "Nuevo título", *in.Title)
				assert.NotNil(t, in.Author)
				assert.Equal(t, "", *in.Author)
				assert.Nil(t, in.Publisher)
				assert.Nil(t, in.ISBN)
				return nil
			})

		req := newMultipartRequest(t, http.MethodPut, "/books/111", map[string]string{
			"title":  "Nuevo título",
			"author": "",
		}, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Book updated successfully"}`, rec.Body.String())
	})

	t.Run("new cover is forwarded", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "111", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, _ services.BookUpdateInput, cover *services.CoverUpload) error {
				assert.NotNil(t, cover)
				assert.Equal(t, ".jpg", cover.Ext)
				return nil
			})

		req := newMultipartRequest(t, http.MethodPut, "/books/111", map[string]string{"title": "X"}, &coverFile{
			fieldName: "cover", fileName: "portada.jpg", contentType: "image/jpeg", data: []byte("jpeg"),
		})
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid cover", func(t *testing.T) {
		req := newMultipartRequest(t, http.MethodPut, "/books/111", nil, &coverFile{
			fieldName: "cover", fileName: "portada.gif", contentType: "image/gif", data: []byte("gif"),
		})
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("book not found", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "999", gomock.Any(), gomock.Nil()).
			Return(services.ErrBookNotFound)

		req := newMultipartRequest(t, http.MethodPut, "/books/999", map[string]string{"title": "X"}, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, rec.Body.String())
	})

	t.Run("new isbn already registered", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "111", gomock.Any(), gomock.Nil()).
			Return(services.ErrISBNExists)

		req := newMultipartRequest(t, http.MethodPut, "/books/111", map[string]string{"isbn": "222"}, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("occupied location", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "111", gomock.Any(), gomock.Nil()).
			Return(services.ErrLocationTaken)

		req := newMultipartRequest(t, http.MethodPut, "/books/111", map[string]string{"location": "A-B01"}, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid path isbn", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateBook(gomock.Any(), "abc", gomock.Any(), gomock.Nil()).
			Return(services.ErrInvalidISBN)

		req := newMultipartRequest(t, http.MethodPut, "/books/abc", map[string]string{"title": "X"}, nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
