// Admin endpoints for inspecting and resetting mounted documents.

package engine

import (
	"net/http"
	"time"

	"github.com/getmockd/mockdb/pkg/httputil"
)

func (h *Handler) adminMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+AdminPrefix+"health", h.handleHealth)
	mux.HandleFunc("GET "+AdminPrefix+"mounts", h.handleMounts)
	mux.HandleFunc("GET "+AdminPrefix+"snapshot", h.handleSnapshot)
	mux.HandleFunc("POST "+AdminPrefix+"reset", h.handleReset)
	return mux
}

// handleHealth handles the liveness probe endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleMounts lists mount paths in lookup order, plus the static route count.
func (h *Handler) handleMounts(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"mounts":    h.resolver.Registry().Mounts(),
		"endpoints": h.resolver.Routes().Len(),
	})
}

// handleSnapshot returns the whole document mounted at ?path=.
func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	root := r.URL.Query().Get("path")
	if root == "" {
		httputil.WriteText(w, http.StatusBadRequest, "path query parameter is required")
		return
	}
	doc, ok, err := h.resolver.Registry().Snapshot(root)
	switch {
	case err != nil:
		h.log.Error("failed to snapshot document", "mount", root, "error", err)
		httputil.WriteText(w, http.StatusInternalServerError, "Error parsing result")
	case !ok:
		httputil.WriteText(w, http.StatusNotFound, "Not Found")
	default:
		httputil.WriteRawJSON(w, http.StatusOK, doc)
	}
}

// handleReset restores every mounted document to its configured state.
func (h *Handler) handleReset(w http.ResponseWriter, _ *http.Request) {
	n, err := h.resolver.Registry().ResetAll()
	if err != nil {
		h.log.Error("failed to reset documents", "error", err)
		httputil.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.log.Info("documents reset", "mounts", n)
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"reset": n})
}
