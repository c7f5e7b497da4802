package template

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedEngine() *Engine {
	e := New()
	e.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	e.rnd = func() int { return 42 }
	return e
}

func TestRender(t *testing.T) {
	e := fixedEngine()
	ctx := NewContext("POST", "/users/7", `{"user":{"name":"Ada"},"items":[{"id":"a1"},{"id":"a2"}],"n":3}`,
		map[string]string{"q": `say "hi" \o/`, "page": "2"},
		map[string]string{"id": "7"},
	)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "plain text", template: "hello", want: "hello"},
		{name: "path", template: "{{path}}", want: "/users/7"},
		{name: "whitespace", template: "{{ path }}", want: "/users/7"},
		{name: "path param", template: `{"id":"{{id}}"}`, want: `{"id":"7"}`},
		{name: "query arg", template: "page {{arg.page}}", want: "page 2"},
		{name: "query arg escaped", template: `{"q":"{{arg.q}}"}`, want: `{"q":"say \"hi\" \\o/"}`},
		{name: "missing arg untouched", template: "{{arg.nope}}", want: "{{arg.nope}}"},
		{name: "unknown untouched", template: "{{whatever}}", want: "{{whatever}}"},
		{name: "rand", template: "{{rand}}-{{rand}}", want: "42-42"},
		{name: "method", template: "{{method}}", want: "POST"},
		{name: "now", template: "{{now}}", want: "2024-05-01T12:00:00Z"},
		{name: "timestamp", template: "{{timestamp}}", want: "1714564800"},
		{name: "body field", template: "{{request.body.user.name}}", want: "Ada"},
		{name: "body index", template: "{{request.body.items[1].id}}", want: "a2"},
		{name: "body number", template: "{{request.body.n}}", want: "3"},
		{name: "body object", template: "{{request.body.user}}", want: `{"name":"Ada"}`},
		{name: "body missing", template: "[{{request.body.missing}}]", want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Render(tt.template, ctx))
		})
	}
}

func TestRender_RawBody(t *testing.T) {
	e := fixedEngine()
	ctx := NewContext("POST", "/echo", "{{path}} is not expanded", nil, nil)
	assert.Equal(t, "echo: {{path}} is not expanded", e.Render("echo: {{body}}", ctx))
}

func TestRender_NonJSONBody(t *testing.T) {
	e := fixedEngine()
	ctx := NewContext("POST", "/", "not json", nil, nil)
	assert.Equal(t, "", e.Render("{{request.body.a}}", ctx))
}

func TestRender_NilContext(t *testing.T) {
	e := fixedEngine()
	assert.Equal(t, "path=", e.Render("path={{path}}", nil))
}

func TestRender_RandRange(t *testing.T) {
	e := New()
	for i := 0; i < 200; i++ {
		n, err := strconv.Atoi(e.Render("{{rand}}", &Context{}))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 100)
	}
}

func TestRender_UUID(t *testing.T) {
	e := New()
	out := e.Render("{{uuid}}", &Context{})
	_, err := uuid.Parse(out)
	assert.NoError(t, err)
	assert.NotEqual(t, out, e.Render("{{uuid}}", &Context{}))
}

func TestRender_ParamsShadowBuiltins(t *testing.T) {
	e := fixedEngine()
	ctx := NewContext("GET", "/x", "", nil, map[string]string{"method": "param"})
	assert.Equal(t, "param", e.Render("{{method}}", ctx))
	assert.Equal(t, "/x", e.Render("{{path}}", ctx))
}
