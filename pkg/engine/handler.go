// Core HTTP request handler for the mock engine.

package engine

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getmockd/mockdb/pkg/httputil"
	"github.com/getmockd/mockdb/pkg/logging"
	"github.com/getmockd/mockdb/pkg/router"
	"github.com/getmockd/mockdb/pkg/template"
	"github.com/getmockd/mockdb/pkg/util"
)

// MaxRequestBodySize is the default limit on request bodies (10MB).
const MaxRequestBodySize = 10 << 20

// AdminPrefix is the path prefix of the built-in admin endpoints. Requests
// under it never reach mounts or static routes.
const AdminPrefix = "/__mockdb/"

// Handler answers requests from a router.Resolver.
type Handler struct {
	resolver       *router.Resolver
	templateEngine *template.Engine
	log            *slog.Logger
	maxBodySize    int64
	admin          http.Handler
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the operational logger.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMaxBodySize limits request bodies to n bytes. Non-positive values keep
// the default.
func WithMaxBodySize(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// WithTemplateEngine replaces the engine used to render static bodies.
func WithTemplateEngine(e *template.Engine) HandlerOption {
	return func(h *Handler) {
		if e != nil {
			h.templateEngine = e
		}
	}
}

// NewHandler creates a Handler for resolver.
func NewHandler(resolver *router.Resolver, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver:       resolver,
		templateEngine: template.New(),
		log:            logging.Nop(),
		maxBodySize:    MaxRequestBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.admin = h.adminMux()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, AdminPrefix) {
		setSource(w, sourceAdmin)
		h.admin.ServeHTTP(w, r)
		return
	}

	if r.Method == http.MethodOptions {
		setSource(w, sourcePreflight)
		writePreflight(w, r)
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteText(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large")
			return
		}
		h.log.Warn("failed to read request body", "path", r.URL.Path, "error", err)
		httputil.WriteText(w, http.StatusBadRequest, "Invalid Body")
		return
	}

	if body != "" {
		h.log.Debug("request body", "method", r.Method, "path", r.URL.Path, "body", util.TruncateBody(body, 0))
	}

	req := router.Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  singleValued(r),
		Body:   body,
	}
	res := h.resolver.Resolve(req)
	setSource(w, string(res.Source))

	switch res.Source {
	case router.SourceMount:
		if res.Status == http.StatusOK {
			httputil.WriteRawJSON(w, res.Status, res.Body)
			return
		}
		httputil.WriteText(w, res.Status, res.Body)
	case router.SourceStatic:
		ctx := template.NewContext(req.Method, req.Path, req.Body, req.Query, res.Params)
		rendered := h.templateEngine.Render(res.Body, ctx)
		setStaticHeaders(w)
		httputil.WriteBody(w, res.Status, rendered)
	default:
		httputil.WriteText(w, res.Status, res.Body)
	}
}

// readBody reads the whole request body, bounded by maxBodySize.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// singleValued flattens the query string, keeping the first value of each key.
func singleValued(r *http.Request) map[string]string {
	values := r.URL.Query()
	if len(values) == 0 {
		return nil
	}
	args := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			args[key] = vals[0]
		}
	}
	return args
}
