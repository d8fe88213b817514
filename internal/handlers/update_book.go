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

// BookUpdater defines the interface that the catalog service must implement.
type BookUpdater interface {
	UpdateBook(ctx context.Context, bookISBN string, in services.BookUpdateInput, cover *services.CoverUpload) error
}

// UpdateBookResponse represents a successful update response
// swagger:model UpdateBookResponse
type UpdateBookResponse struct {
	// Success message
	// default: Book updated successfully
	Message string `json:"message"`
}

// UpdateBookErrorResponse represents an error response for book updates
// swagger:model UpdateBookErrorResponse
type UpdateBookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewUpdateBookHandler returns an HTTP handler for partially updating a
// book identified by ISBN. Form fields that are absent leave the stored
// value unchanged; a new cover, when present, overwrites the old one.
// @Summary Update book
// @Description Applies a partial update to the book with the given ISBN
// @Tags books
// @Accept mpfd
// @Produce json
// @Param bookIsbn path string true "ISBN of the book to update"
// @Param isbn formData string false "New ISBN"
// @Param title formData string false "Title"
// @Param author formData string false "Author"
// @Param publisher formData string false "Publisher"
// @Param publication_year formData string false "Publication year"
// @Param location formData string false "Shelf location"
// @Param cover formData file false "New cover image (.jpg, max 5MB)"
// @Success 201 {object} handlers.UpdateBookResponse "Book updated"
// @Failure 400 {object} handlers.UpdateBookErrorResponse "Invalid input or duplicate data"
// @Failure 404 {object} handlers.UpdateBookErrorResponse "Book not found"
// @Failure 500 {object} handlers.UpdateBookErrorResponse "Failed to update book"
// @Router /books/{bookIsbn} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxCoverSize + 1<<20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateBookErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		cover, err := parseCoverUpload(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateBookErrorResponse{
				Error: err.Error(),
			})
			return
		}

		in := services.BookUpdateInput{
			ISBN:            formValuePtr(r, "isbn"),
			Title:           formValuePtr(r, "title"),
			Author:          formValuePtr(r, "author"),
			Publisher:       formValuePtr(r, "publisher"),
			PublicationYear: formValuePtr(r, "publication_year"),
			Location:        formValuePtr(r, "location"),
		}

		if err := svc.UpdateBook(r.Context(), chi.URLParam(r, "bookIsbn"), in, cover); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidISBN):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{
					Error: "invalid isbn",
				})
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{
					Error: "Book not found",
				})
			case errors.Is(err, services.ErrISBNExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{
					Error: "A book with that ISBN already exists",
				})
			case errors.Is(err, services.ErrLocationTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{
					Error: "A book already occupies that location",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{
					Error: "Failed to update book",
				})
			}
			return
		}

		// 201 on update is part of the legacy surface this API preserves.
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UpdateBookResponse{
			Message: "Book updated successfully",
		})
	}
}
