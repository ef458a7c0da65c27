package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shltmc-be/pkg/logger"
)

type contextKey string

// RequestIDContextKey is the context key carrying the request ID
const RequestIDContextKey contextKey = "request_id"

// RequestID creates a middleware that tags each request with a unique
// ID, exposed on the X-Request-ID response header.
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Debug("Request received")

			next.ServeHTTP(w, r)
		})
	}
}
