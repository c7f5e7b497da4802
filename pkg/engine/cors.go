// CORS handling for the mock engine.

package engine

import "net/http"

const (
	allowedMethods = "GET, POST, OPTIONS, HEAD"
	allowedHeaders = "Content-Type, Authorization"
)

// writePreflight answers an OPTIONS request. The caller's Origin is echoed
// back; requests without one get "*".
func writePreflight(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}
	h := w.Header()
	h.Set("Allow", allowedMethods)
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
	w.WriteHeader(http.StatusNoContent)
}

// setStaticHeaders adds the headers every static endpoint response carries.
func setStaticHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Allow", allowedMethods)
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
}
