package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockdb/pkg/config"
	"github.com/getmockd/mockdb/pkg/docstore"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	reg := docstore.NewRegistry()
	_, err := reg.Mount("/db", `{"list":[{"id":"1","v":"a"},{"id":"2","v":"b"}]}`)
	require.NoError(t, err)

	routes := NewRouteTable(map[string][]config.Endpoint{
		"get": {
			{Path: "/users/{id}", Status: 200, Body: `{"id":"{{id}}"}`},
			{Path: "/users/me", Status: 200, Body: "shadowed"},
			{Path: "/teapot", Status: 418, Body: "short and stout"},
		},
		"POST": {
			{Path: "/users", Status: 201, Body: "{{body}}"},
		},
	})
	return NewResolver(reg, routes)
}

func TestRouteTable_Lookup(t *testing.T) {
	table := NewRouteTable(map[string][]config.Endpoint{
		"get": {
			{Path: "/a/{x}", Status: 200, Body: "first"},
			{Path: "/a/b", Status: 200, Body: "second"},
		},
	})

	ep, params, status := table.Lookup("GET", "/a/b")
	assert.Equal(t, LookupFound, status)
	assert.Equal(t, "first", ep.Body)
	assert.Equal(t, map[string]string{"x": "b"}, params)

	_, _, status = table.Lookup("get", "/a/b/c")
	assert.Equal(t, LookupNotFound, status)

	_, _, status = table.Lookup("PUT", "/a/b")
	assert.Equal(t, LookupMethodNotFound, status)

	assert.Equal(t, 2, table.Len())
}

func TestRouteTable_MergesMethodCaseInKeyOrder(t *testing.T) {
	endpoints := map[string][]config.Endpoint{
		"get": {{Path: "/who", Status: 200, Body: "lower"}},
		"GET": {{Path: "/who", Status: 200, Body: "upper"}},
		"Get": {{Path: "/who", Status: 200, Body: "title"}},
	}

	for i := 0; i < 50; i++ {
		table := NewRouteTable(endpoints)
		ep, _, status := table.Lookup("GET", "/who")
		require.Equal(t, LookupFound, status)
		require.Equal(t, "upper", ep.Body, "build %d", i)
		require.Equal(t, 3, table.Len())
	}
}

func TestRouteTable_DefaultsStatus(t *testing.T) {
	endpoints := map[string][]config.Endpoint{
		"GET": {{Path: "/plain", Body: "ok"}},
	}
	table := NewRouteTable(endpoints)

	ep, _, status := table.Lookup("GET", "/plain")
	require.Equal(t, LookupFound, status)
	assert.Equal(t, config.DefaultStatus, ep.Status)
	assert.Equal(t, 0, endpoints["GET"][0].Status, "input must not be modified")
}

func TestResolver_MountsComeFirst(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Method: "GET", Path: "/db/list", Query: map[string]string{"v": "a"}})
	assert.Equal(t, SourceMount, res.Source)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, `[{"id":"1","v":"a"}]`, res.Body)
}

func TestResolver_MountErrorsKeepStatusAndMessage(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name    string
		req     Request
		status  int
		message string
	}{
		{
			name:    "missing path",
			req:     Request{Method: "GET", Path: "/db/nope"},
			status:  http.StatusNotFound,
			message: "Not Found",
		},
		{
			name:    "patch array",
			req:     Request{Method: "PATCH", Path: "/db/list", Body: `{"v":"z"}`},
			status:  http.StatusBadRequest,
			message: "Invalid Path",
		},
		{
			name:    "unsupported verb",
			req:     Request{Method: "PUT", Path: "/db/list", Body: `{}`},
			status:  http.StatusMethodNotAllowed,
			message: "Method Not Allowed",
		},
		{
			name:    "delete root",
			req:     Request{Method: "DELETE", Path: "/db"},
			status:  http.StatusBadRequest,
			message: "Can't remove all the db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.req)
			assert.Equal(t, SourceMount, res.Source)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.message, res.Body)
		})
	}
}

func TestResolver_StaticRoutes(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Method: "GET", Path: "/users/me"})
	assert.Equal(t, SourceStatic, res.Source)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, `{"id":"{{id}}"}`, res.Body)
	assert.Equal(t, map[string]string{"id": "me"}, res.Params)

	res = r.Resolve(Request{Method: "GET", Path: "/teapot/"})
	assert.Equal(t, SourceStatic, res.Source)
	assert.Equal(t, http.StatusTeapot, res.Status)

	res = r.Resolve(Request{Method: "post", Path: "/users", Body: "x"})
	assert.Equal(t, SourceStatic, res.Source)
	assert.Equal(t, http.StatusCreated, res.Status)
}

func TestResolver_NothingMatches(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(Request{Method: "DELETE", Path: "/users/1"})
	assert.Equal(t, SourceNone, res.Source)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, MessageMethodNotFound, res.Body)

	res = r.Resolve(Request{Method: "GET", Path: "/nowhere"})
	assert.Equal(t, SourceNone, res.Source)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, MessageNotFound, res.Body)
}

func TestResolver_NilCollaborators(t *testing.T) {
	r := NewResolver(nil, nil)
	res := r.Resolve(Request{Method: "GET", Path: "/"})
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, MessageMethodNotFound, res.Body)
	assert.Equal(t, 0, r.Routes().Len())
	assert.Equal(t, 0, r.Registry().Len())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", normalizePath("/"))
	assert.Equal(t, "/a", normalizePath("/a/"))
	assert.Equal(t, "/a", normalizePath("/a"))
	assert.Equal(t, "", normalizePath(""))
}
