package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/dmolinero/biblioteca-api/internal/services"
)

func TestRandomBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRandomBooksProvider(ctrl)

	r := chi.NewRouter()
	r.Get("/books/random/{count}", NewRandomBooksHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		sample := []models.BookDB{{ISBN: 111, Title: "UNO"}, {ISBN: 222, Title: "DOS"}}
		mockSvc.EXPECT().RandomBooks(gomock.Any(), 2).Return(sample, nil)

		req := httptest.NewRequest(http.MethodGet, "/books/random/2", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.BookDB
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("non-numeric count", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books/random/abc", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive count", func(t *testing.T) {
		mockSvc.EXPECT().RandomBooks(gomock.Any(), 0).Return(nil, services.ErrInvalidBookCount)

		req := httptest.NewRequest(http.MethodGet, "/books/random/0", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty catalog", func(t *testing.T) {
		mockSvc.EXPECT().RandomBooks(gomock.Any(), 5).Return(nil, services.ErrNoBooks)

		req := httptest.NewRequest(http.MethodGet, "/books/random/5", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().RandomBooks(gomock.Any(), 5).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/books/random/5", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
