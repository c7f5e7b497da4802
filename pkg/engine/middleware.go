// Request logging and metrics middleware for the mock engine.

package engine

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/getmockd/mockdb/pkg/docstore"
	"github.com/getmockd/mockdb/pkg/metrics"
)

const (
	sourceAdmin     = "admin"
	sourcePreflight = "preflight"
)

// responseRecorder wraps http.ResponseWriter to capture the status code and
// the source that answered the request.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
	source     string
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		source:         "none",
	}
}

// WriteHeader captures the status code and writes it to the underlying ResponseWriter.
func (w *responseRecorder) WriteHeader(code int) {
	if !w.written {
		w.statusCode = code
		w.written = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write writes data to the underlying ResponseWriter.
func (w *responseRecorder) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// setSource records which component answered, if w is being observed.
func setSource(w http.ResponseWriter, source string) {
	if rec, ok := w.(*responseRecorder); ok {
		rec.source = source
	}
}

// ObserveMiddleware logs one record per request and feeds m. m may be nil.
func ObserveMiddleware(next http.Handler, log *slog.Logger, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		// Unknown methods share one label value.
		m.ObserveRequest(docstore.ParseMethod(r.Method).String(), rec.source, rec.statusCode, elapsed)
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.statusCode,
			"source", rec.source,
			"duration", elapsed,
		)
		if log.Enabled(r.Context(), slog.LevelDebug) && r.URL.RawQuery != "" {
			log.Debug("request query", "path", r.URL.Path, "query", r.URL.RawQuery)
		}
	})
}
