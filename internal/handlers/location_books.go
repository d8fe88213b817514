package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
)

// LocationGrouper defines the interface that the catalog service must implement.
type LocationGrouper interface {
	GroupByLocation(ctx context.Context) ([]models.ShelfGroup, error)
}

// LocationBooksErrorResponse represents an error response for the location endpoint
// swagger:model LocationBooksErrorResponse
type LocationBooksErrorResponse struct {
	// Error message
	// default: Failed to retrieve location books
	Error string `json:"error"`
}

// NewLocationBooksHandler returns an HTTP handler grouping the catalog
// into the shelf/section/slot hierarchy derived from location codes.
// @Summary Books by location
// @Description Returns the catalog grouped by shelf, section, and slot
// @Tags books
// @Produce json
// @Success 200 {array} models.ShelfGroup "Shelf hierarchy"
// @Failure 500 {object} handlers.LocationBooksErrorResponse "Failed to retrieve location books"
// @Router /books/location [get]
func NewLocationBooksHandler(svc LocationGrouper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.GroupByLocation(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to group books by location", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LocationBooksErrorResponse{
				Error: "Failed to retrieve location books",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(groups)
	}
}
