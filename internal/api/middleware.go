package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sirius-edu/sirius/internal/logger"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// requestLogger attaches a request-scoped logger to the context and logs one
// line per request on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLog := s.Log.With().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(reqLog.WithContext(r.Context())))

		reqLog.Info().
			Int("status", rw.status).
			Int("bytes", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// recoverer turns handler panics into 500 responses instead of dropped
// connections.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error().
					Interface("panic", rec).
					Msg("handler panicked")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
