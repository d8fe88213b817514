package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dmolinero/biblioteca-api/internal/services"
)

func TestDeleteBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookDeleter(ctrl)

	r := chi.NewRouter()
	r.Delete("/books/{bookIsbn}", NewDeleteBookHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().DeleteBook(gomock.Any(), "111").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/books/111", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Book deleted"}`, rec.Body.String())
	})

	t.Run("invalid isbn", func(t *testing.T) {
		mockSvc.EXPECT().DeleteBook(gomock.Any(), "abc").Return(services.ErrInvalidISBN)

		req := httptest.NewRequest(http.MethodDelete, "/books/abc", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("book not found", func(t *testing.T) {
		mockSvc.EXPECT().DeleteBook(gomock.Any(), "999").Return(services.ErrBookNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/books/999", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, rec.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().DeleteBook(gomock.Any(), "111").Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodDelete, "/books/111", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
