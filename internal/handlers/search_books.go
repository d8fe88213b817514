package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/go-chi/chi/v5"
)

// BookSearcher defines the interface that the catalog service must implement.
type BookSearcher interface {
	SearchBooks(ctx context.Context, keyword string) ([]models.BookDB, error)
}

// SearchBooksErrorResponse represents an error response for the search endpoint
// swagger:model SearchBooksErrorResponse
type SearchBooksErrorResponse struct {
	// Error message
	// default: Failed to search books
	Error string `json:"error"`
}

// NewSearchBooksHandler returns an HTTP handler searching books by
// keyword: exact ISBN or year match, or substring match on title,
// author, publisher, and location.
// @Summary Search books
// @Description Returns books matching the keyword, ordered by title
// @Tags books
// @Produce json
// @Param keyword path string true "Search keyword"
// @Success 200 {array} models.BookDB "Matching books"
// @Failure 500 {object} handlers.SearchBooksErrorResponse "Failed to search books"
// @Router /books/search/{keyword} [get]
func NewSearchBooksHandler(svc BookSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.SearchBooks(r.Context(), chi.URLParam(r, "keyword"))
		if err != nil {
			logger.Log.Errorw("failed to search books", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchBooksErrorResponse{
				Error: "Failed to search books",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(books)
	}
}
