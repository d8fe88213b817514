package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/services"
	"github.com/go-chi/chi/v5"
)

// BookDeleter defines the interface that the catalog service must implement.
type BookDeleter interface {
	DeleteBook(ctx context.Context, bookISBN string) error
}

// DeleteBookResponse represents a successful deletion response
// swagger:model DeleteBookResponse
type DeleteBookResponse struct {
	// Success message
	// default: Book deleted
	Message string `json:"message"`
}

// DeleteBookErrorResponse represents an error response for book deletion
// swagger:model DeleteBookErrorResponse
type DeleteBookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewDeleteBookHandler returns an HTTP handler deleting a book and,
// best-effort, its stored cover.
// @Summary Delete book
// @Description Deletes the book with the given ISBN and removes its cover blob
// @Tags books
// @Produce json
// @Param bookIsbn path string true "ISBN of the book to delete"
// @Success 200 {object} handlers.DeleteBookResponse "Book deleted"
// @Failure 400 {object} handlers.DeleteBookErrorResponse "Invalid isbn"
// @Failure 404 {object} handlers.DeleteBookErrorResponse "Book not found"
// @Failure 500 {object} handlers.DeleteBookErrorResponse "Failed to delete book"
// @Router /books/{bookIsbn} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteBook(r.Context(), chi.URLParam(r, "bookIsbn")); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidISBN):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{
					Error: "invalid isbn",
				})
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{
					Error: "Book not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{
					Error: "Failed to delete book",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteBookResponse{
			Message: "Book deleted",
		})
	}
}
