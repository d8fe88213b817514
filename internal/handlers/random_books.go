package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/dmolinero/biblioteca-api/internal/services"
	"github.com/go-chi/chi/v5"
)

// RandomBooksProvider defines the interface that the catalog service must implement.
type RandomBooksProvider interface {
	RandomBooks(ctx context.Context, n int) ([]models.BookDB, error)
}

// RandomBooksErrorResponse represents an error response for the random endpoint
// swagger:model RandomBooksErrorResponse
type RandomBooksErrorResponse struct {
	// Error message
	// default: Invalid count parameter
	Error string `json:"error"`
}

// NewRandomBooksHandler returns an HTTP handler serving a randomized
// sample of books. The selection is unseeded; order varies per call.
// @Summary Random books
// @Description Returns the requested number of books in randomized order
// @Tags books
// @Produce json
// @Param count path int true "Number of books to return (positive)"
// @Success 200 {array} models.BookDB "Random books"
// @Failure 400 {object} handlers.RandomBooksErrorResponse "Invalid count parameter"
// @Failure 404 {object} handlers.RandomBooksErrorResponse "No books available"
// @Failure 500 {object} handlers.RandomBooksErrorResponse "Failed to retrieve books"
// @Router /books/random/{count} [get]
func NewRandomBooksHandler(svc RandomBooksProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "count"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RandomBooksErrorResponse{
				Error: "Invalid count parameter",
			})
			return
		}

		books, err := svc.RandomBooks(r.Context(), n)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBookCount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RandomBooksErrorResponse{
					Error: "Invalid count parameter",
				})
			case errors.Is(err, services.ErrNoBooks):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RandomBooksErrorResponse{
					Error: "No books available",
				})
			default:
				logger.Log.Errorw("failed to retrieve random books", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RandomBooksErrorResponse{
					Error: "Failed to retrieve books",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(books)
	}
}
