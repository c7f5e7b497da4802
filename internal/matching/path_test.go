package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		want     bool
	}{
		{name: "exact match", template: "/api/users", path: "/api/users", want: true},
		{name: "named param", template: "/users/{id}", path: "/users/5", want: true},
		{name: "segment count mismatch", template: "/users/{id}/x", path: "/users/5", want: false},
		{name: "literal mismatch", template: "/users/{id}", path: "/people/5", want: false},
		{name: "param matches empty segment", template: "/users/{id}", path: "/users/", want: true},
		{name: "trailing slash adds a segment", template: "/users/{id}", path: "/users/5/", want: false},
		{name: "multiple params", template: "/a/{x}/b/{y}", path: "/a/1/b/2", want: true},
		{name: "empty template and path", template: "", path: "", want: true},
		{name: "empty template against root", template: "", path: "/", want: false},
		{name: "half brace is literal", template: "/users/{id", path: "/users/5", want: false},
		{name: "half brace literal equal", template: "/users/{id", path: "/users/{id", want: true},
		{name: "empty braces are a wildcard", template: "/users/{}", path: "/users/5", want: true},
		{name: "root", template: "/", path: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.template, tt.path))
		})
	}
}

func TestExtract(t *testing.T) {
	t.Run("single param", func(t *testing.T) {
		params, ok := Extract("/users/5", "/users/{id}")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "5"}, params)
	})

	t.Run("binds by position", func(t *testing.T) {
		params, ok := Extract("/orgs/acme/users/7", "/orgs/{org}/users/{user}")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"org": "acme", "user": "7"}, params)
	})

	t.Run("duplicate name keeps last", func(t *testing.T) {
		params, ok := Extract("/a/1/b/2", "/a/{v}/b/{v}")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"v": "2"}, params)
	})

	t.Run("no params yields empty map", func(t *testing.T) {
		params, ok := Extract("/health", "/health")
		require.True(t, ok)
		assert.Empty(t, params)
	})

	t.Run("empty segment binds empty value", func(t *testing.T) {
		params, ok := Extract("/users/", "/users/{id}")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": ""}, params)
	})

	t.Run("structural mismatch", func(t *testing.T) {
		params, ok := Extract("/people/5", "/users/{id}")
		assert.False(t, ok)
		assert.Nil(t, params)
	})

	t.Run("segment count mismatch", func(t *testing.T) {
		params, ok := Extract("/users/5", "/users/{id}/x")
		assert.False(t, ok)
		assert.Nil(t, params)
	})
}

func TestExtractAgreesWithMatches(t *testing.T) {
	cases := [][2]string{
		{"/users/{id}", "/users/5"},
		{"/users/{id}", "/users/5/6"},
		{"/a/{b}/c", "/a/x/c"},
		{"/a/{b}/c", "/a/x/d"},
		{"", ""},
	}
	for _, c := range cases {
		_, ok := Extract(c[1], c[0])
		assert.Equal(t, Matches(c[0], c[1]), ok, "template %q path %q", c[0], c[1])
	}
}
