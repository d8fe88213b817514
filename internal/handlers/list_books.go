package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/go-chi/chi/v5"
)

// BookLister defines the interface that the catalog service must implement.
type BookLister interface {
	ListBooks(ctx context.Context, sortBy string) ([]models.BookDB, error)
}

// ListBooksErrorResponse represents an error response for the listing endpoint
// swagger:model ListBooksErrorResponse
type ListBooksErrorResponse struct {
	// Error message
	// default: Failed to retrieve books
	Error string `json:"error"`
}

// NewListBooksHandler returns an HTTP handler listing every book sorted
// by the path field. Unrecognized fields fall back to title.
// @Summary List books
// @Description Returns all books ordered by the given field (title, author, publisher, publication_year, id)
// @Tags books
// @Produce json
// @Param sortBy path string true "Sort field; anything else falls back to title"
// @Success 200 {array} models.BookDB "Sorted books"
// @Failure 500 {object} handlers.ListBooksErrorResponse "Failed to retrieve books"
// @Router /books/{sortBy} [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListBooks(r.Context(), chi.URLParam(r, "sortBy"))
		if err != nil {
			logger.Log.Errorw("failed to list books", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListBooksErrorResponse{
				Error: "Failed to retrieve books",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(books)
	}
}
