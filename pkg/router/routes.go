package router

import (
	"maps"
	"slices"
	"strings"

	"github.com/getmockd/mockdb/internal/matching"
	"github.com/getmockd/mockdb/pkg/config"
)

// LookupStatus is the outcome of a static route lookup.
type LookupStatus int

const (
	// LookupFound means an endpoint matched.
	LookupFound LookupStatus = iota
	// LookupMethodNotFound means no endpoint is registered for the method.
	LookupMethodNotFound
	// LookupNotFound means the method is known but no path template matched.
	LookupNotFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupMethodNotFound:
		return "method not found"
	case LookupNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// RouteTable holds the static endpoints by upper-cased method. It is built
// once and only read afterwards, so lookups need no locking.
type RouteTable struct {
	routes map[string][]config.Endpoint
}

// NewRouteTable copies endpoints into a new table. Declared order within
// each method is kept; keys that differ only in case are merged in sorted
// key order. An endpoint with no status answers config.DefaultStatus.
func NewRouteTable(endpoints map[string][]config.Endpoint) *RouteTable {
	routes := make(map[string][]config.Endpoint, len(endpoints))
	for _, method := range slices.Sorted(maps.Keys(endpoints)) {
		key := strings.ToUpper(method)
		for _, ep := range endpoints[method] {
			if ep.Status == 0 {
				ep.Status = config.DefaultStatus
			}
			routes[key] = append(routes[key], ep)
		}
	}
	return &RouteTable{routes: routes}
}

// Lookup returns the first endpoint registered for method whose template
// matches path, along with the path parameters it binds.
func (t *RouteTable) Lookup(method, path string) (config.Endpoint, map[string]string, LookupStatus) {
	eps, ok := t.routes[strings.ToUpper(method)]
	if !ok {
		return config.Endpoint{}, nil, LookupMethodNotFound
	}
	for _, ep := range eps {
		if !matching.Matches(ep.Path, path) {
			continue
		}
		params, _ := matching.Extract(path, ep.Path)
		return ep, params, LookupFound
	}
	return config.Endpoint{}, nil, LookupNotFound
}

// Len returns the number of endpoints across all methods.
func (t *RouteTable) Len() int {
	n := 0
	for _, eps := range t.routes {
		n += len(eps)
	}
	return n
}
