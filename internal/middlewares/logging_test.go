package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()
	middleware := LoggingMiddleware(log)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/books/count", nil)
	rec := httptest.NewRecorder()

	middleware(next).ServeHTTP(rec, req)

	// The wrapped handler's status and body pass through untouched.
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())

	// Each request gets an ID echoed back to the client.
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_UniqueRequestIDs(t *testing.T) {
	log := zap.NewNop().Sugar()
	middleware := LoggingMiddleware(log)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ids := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		middleware(next).ServeHTTP(rec, req)
		ids[rec.Header().Get("X-Request-ID")] = struct{}{}
	}

	assert.Len(t, ids, 5)
}
