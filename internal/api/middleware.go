package api

import (
	"net/http"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/metrics"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const requestIDHeader = "X-Request-ID"

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// requestIDMiddleware reuses the caller's X-Request-ID or assigns a new one and
// stores it in the request context for logging.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = logging.GenerateRequestID()
		}
		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(logging.ContextWithRequestID(r.Context(), id)))
	})
}

// loggingMiddleware logs end-to-end request duration and response size and
// feeds the HTTP metrics when m is set.
func loggingMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{
				ResponseWriter: w,
				status:         0,
			}

			next.ServeHTTP(sw, r)

			dur := time.Since(start)
			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			logging.Ctx(r.Context()).Info().
				Str("method", r.Method).
				Str("path", r.URL.RequestURI()).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Int64("dur_ms", dur.Milliseconds()).
				Msg("request")

			if m == nil {
				return
			}
			route := routePattern(r)
			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, route).Observe(dur.Seconds())
		})
	}
}

// routePattern keeps metric labels bounded by using the matched chi pattern.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
