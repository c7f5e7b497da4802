// Package httputil provides shared HTTP response writers.
package httputil

import (
	"encoding/json"
	"io"
	"net/http"
)

// Content types written by this package.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteRawJSON writes body, which must already be JSON text, unchanged.
func WriteRawJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// WriteText writes a plain-text response such as an error message.
func WriteText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

// WriteBody writes body without setting a Content-Type, leaving net/http to
// sniff one.
func WriteBody(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
