package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
)

// BookCounter defines the interface that the catalog service must implement.
type BookCounter interface {
	Count(ctx context.Context) (int64, error)
}

// BookCountResponse represents the total number of books
// swagger:model BookCountResponse
type BookCountResponse struct {
	// Total book rows
	// default: 150
	Count int64 `json:"count"`
}

// BookCountErrorResponse represents an error response for the count endpoint
// swagger:model BookCountErrorResponse
type BookCountErrorResponse struct {
	// Error message
	// default: Failed to retrieve book count
	Error string `json:"error"`
}

// NewBookCountHandler returns an HTTP handler for the total book count.
// @Summary Book count
// @Description Returns the total number of books in the catalog
// @Tags books
// @Produce json
// @Success 200 {object} handlers.BookCountResponse "Total count"
// @Failure 500 {object} handlers.BookCountErrorResponse "Failed to retrieve book count"
// @Router /books/count [get]
func NewBookCountHandler(svc BookCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Count(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to retrieve book count", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookCountErrorResponse{
				Error: "Failed to retrieve book count",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookCountResponse{Count: count})
	}
}
