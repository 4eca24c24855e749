package http

import (
	"net/http"
	"time"

	"github.com/dchernov/weightkeeper/internal/logger"
)

// withLogging emits one access-log line per request with the final status
// and response size captured by the responseWriter wrapper.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
