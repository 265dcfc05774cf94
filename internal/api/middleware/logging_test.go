package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marketverse/storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {

	t.Run("Generates A Correlation ID When Absent", func(t *testing.T) {
		var sawLogger bool

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawLogger = middleware.LoggerFromContext(r.Context()) != nil
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rec := httptest.NewRecorder()

		middleware.Logging(next).ServeHTTP(rec, req)

		assert.True(t, sawLogger)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Propagates The Caller's Request ID", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()

		middleware.Logging(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestLoggerFromContext_DefaultsWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotNil(t, middleware.LoggerFromContext(req.Context()))
}
