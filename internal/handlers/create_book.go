package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/services"
)

// BookAdder defines the interface that the catalog service must implement.
type BookAdder interface {
	AddBook(ctx context.Context, in services.BookInput, cover *services.CoverUpload) error
}

// CreateBookRequest represents the multipart form fields for creating a book
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// ISBN
	// required: true
	// default: 9780307474728
	ISBN string `json:"isbn" validate:"required"`

	// Title
	// required: true
	// default: Cien años de soledad
	Title string `json:"title" validate:"required"`

	// Author
	// default: Gabriel García Márquez
	Author string `json:"author"`

	// Publisher
	// default: Editorial Sudamericana
	Publisher string `json:"publisher"`

	// Publication year
	// default: 1967
	PublicationYear string `json:"publication_year" validate:"omitempty,max=6"`

	// Shelf location
	// default: A-V10
	Location string `json:"location" validate:"omitempty,max=6"`
}

// CreateBookResponse represents a successful creation response
// swagger:model CreateBookResponse
type CreateBookResponse struct {
	// Success message
	// default: Book stored successfully
	Message string `json:"message"`
}

// CreateBookErrorResponse represents an error response for book creation
// swagger:model CreateBookErrorResponse
type CreateBookErrorResponse struct {
	// Error message
	// default: A book with that ISBN already exists
	Error string `json:"error"`
}

// NewCreateBookHandler returns an HTTP handler for adding a book from a
// multipart form with an optional jpeg cover.
// @Summary Add book
// @Description Creates a book after ISBN and location uniqueness checks; stores the cover after the row commit
// @Tags books
// @Accept mpfd
// @Produce json
// @Param isbn formData string true "ISBN"
// @Param title formData string true "Title"
// @Param author formData string false "Author"
// @Param publisher formData string false "Publisher"
// @Param publication_year formData string false "Publication year"
// @Param location formData string false "Shelf location"
// @Param cover formData file false "Cover image (.jpg, max 5MB)"
// @Success 201 {object} handlers.CreateBookResponse "Book stored"
// @Failure 400 {object} handlers.CreateBookErrorResponse "Invalid input or duplicate data"
// @Failure 500 {object} handlers.CreateBookErrorResponse "Failed to add new book"
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BookAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxCoverSize + 1<<20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		req := CreateBookRequest{
			ISBN:            r.FormValue("isbn"),
			Title:           r.FormValue("title"),
			Author:          r.FormValue("author"),
			Publisher:       r.FormValue("publisher"),
			PublicationYear: r.FormValue("publication_year"),
			Location:        r.FormValue("location"),
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookErrorResponse{
				Error: "title and isbn are required",
			})
			return
		}

		cover, err := parseCoverUpload(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookErrorResponse{
				Error: err.Error(),
			})
			return
		}

		in := services.BookInput{
			ISBN:            req.ISBN,
			Title:           req.Title,
			Author:          req.Author,
			Publisher:       req.Publisher,
			PublicationYear: req.PublicationYear,
			Location:        req.Location,
		}

		if err := svc.AddBook(r.Context(), in, cover); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidISBN):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{
					Error: "invalid isbn",
				})
			case errors.Is(err, services.ErrISBNExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{
					Error: "A book with that ISBN already exists",
				})
			case errors.Is(err, services.ErrLocationTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{
					Error: "A book already occupies that location",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{
					Error: "Failed to add new book",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBookResponse{
			Message: "Book stored successfully",
		})
	}
}
