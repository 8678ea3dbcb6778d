package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"weather-report/pkg/logging"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when it sends
// one, and stores it in the request context for the logger
func RequestID(logger *logging.StructuredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			ctx := logging.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)

			logger.Debug(ctx, "[API_REQUEST] Request received", logging.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
