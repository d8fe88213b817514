package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/dmolinero/biblioteca-api/internal/services"
	"github.com/go-chi/chi/v5"
)

// BookGetter defines the interface that the catalog service must implement.
type BookGetter interface {
	GetBookByISBN(ctx context.Context, isbn string) (*models.BookDB, error)
}

// GetBookErrorResponse represents an error response for the ISBN lookup endpoint
// swagger:model GetBookErrorResponse
type GetBookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewGetBookHandler returns an HTTP handler fetching one book by ISBN.
// @Summary Get book by ISBN
// @Description Returns the book with the given ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} models.BookDB "Book details"
// @Failure 400 {object} handlers.GetBookErrorResponse "ISBN parameter is required"
// @Failure 404 {object} handlers.GetBookErrorResponse "Book not found"
// @Failure 500 {object} handlers.GetBookErrorResponse "Failed to retrieve book"
// @Router /books/isbn/{isbn} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := svc.GetBookByISBN(r.Context(), chi.URLParam(r, "isbn"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidISBN):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GetBookErrorResponse{
					Error: "ISBN parameter is required",
				})
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetBookErrorResponse{
					Error: "Book not found",
				})
			default:
				logger.Log.Errorw("failed to retrieve book", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetBookErrorResponse{
					Error: "Failed to retrieve book",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(book)
	}
}
