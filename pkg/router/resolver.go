package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getmockd/mockdb/pkg/docstore"
)

// Source identifies what produced a Result.
type Source string

const (
	// SourceMount is a response from a mounted document.
	SourceMount Source = "mount"
	// SourceStatic is a response from a static endpoint.
	SourceStatic Source = "static"
	// SourceNone means nothing matched.
	SourceNone Source = "none"
)

// Request is the transport-independent view of an incoming request.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

// Result is the response chosen for a Request. Static results carry the
// unrendered body template and the bound path parameters.
type Result struct {
	Source Source
	Status int
	Body   string
	Params map[string]string
}

// Messages for requests nothing answers.
const (
	MessageMethodNotFound = "Method Not Found"
	MessageNotFound       = "Not Found"
)

// Resolver picks the response for a request: mounted documents first, then
// static endpoints, then a plain 404.
type Resolver struct {
	registry *docstore.Registry
	routes   *RouteTable
}

// NewResolver creates a Resolver. Either argument may be nil.
func NewResolver(registry *docstore.Registry, routes *RouteTable) *Resolver {
	if registry == nil {
		registry = docstore.NewRegistry()
	}
	if routes == nil {
		routes = NewRouteTable(nil)
	}
	return &Resolver{registry: registry, routes: routes}
}

// Registry returns the mount registry the resolver dispatches to.
func (r *Resolver) Registry() *docstore.Registry {
	return r.registry
}

// Routes returns the static route table.
func (r *Resolver) Routes() *RouteTable {
	return r.routes
}

// Resolve answers req. Document store failures become their HTTP status and
// message unchanged.
func (r *Resolver) Resolve(req Request) Result {
	method := docstore.ParseMethod(req.Method)
	body, matched, err := r.registry.Dispatch(method, req.Path, req.Query, req.Body)
	if matched {
		if err != nil {
			return Result{Source: SourceMount, Status: statusOf(err), Body: messageOf(err)}
		}
		return Result{Source: SourceMount, Status: http.StatusOK, Body: body}
	}

	ep, params, status := r.routes.Lookup(req.Method, normalizePath(req.Path))
	switch status {
	case LookupMethodNotFound:
		return Result{Source: SourceNone, Status: http.StatusNotFound, Body: MessageMethodNotFound}
	case LookupNotFound:
		return Result{Source: SourceNone, Status: http.StatusNotFound, Body: MessageNotFound}
	}
	return Result{Source: SourceStatic, Status: ep.Status, Body: ep.Body, Params: params}
}

// normalizePath drops one trailing slash so /users/ finds /users.
func normalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

func statusOf(err error) int {
	var sc docstore.StatusCodeError
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

func messageOf(err error) string {
	var de *docstore.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
