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
)

func TestSearchBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookSearcher(ctrl)

	r := chi.NewRouter()
	r.Get("/books/search/{keyword}", NewSearchBooksHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		books := []models.BookDB{{ISBN: 111, Title: "BOTANICA"}}
		mockSvc.EXPECT().SearchBooks(gomock.Any(), "botanica").Return(books, nil)

		req := httptest.NewRequest(http.MethodGet, "/books/search/botanica", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.BookDB
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("no matches serialize as an empty array", func(t *testing.T) {
		mockSvc.EXPECT().SearchBooks(gomock.Any(), "nothing").Return([]models.BookDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/books/search/nothing", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().SearchBooks(gomock.Any(), "botanica").Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/books/search/botanica", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
