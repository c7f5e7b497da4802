package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonConfig = `{
  "endpoints": {
    "get": [
      {"path": "/users/{id}", "body": "{\"id\":\"{{id}}\"}"},
      {"path": "/teapot", "status": 418, "body": "short and stout"}
    ]
  },
  "db": [
    {"path": "/db", "data": "{\"list\":[]}"}
  ]
}`

const yamlConfig = `
endpoints:
  get:
    - path: /users/{id}
      body: '{"id":"{{id}}"}'
    - path: /teapot
      status: 418
      body: short and stout
db:
  - path: /db
    data: '{"list":[]}'
`

const tomlConfig = `
[[endpoints.get]]
path = "/users/{id}"
body = '{"id":"{{id}}"}'

[[endpoints.get]]
path = "/teapot"
status = 418
body = "short and stout"

[[db]]
path = "/db"
data = '{"list":[]}'
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile_AllFormatsAgree(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"mockdb.json": jsonConfig,
		"mockdb.yaml": yamlConfig,
		"mockdb.toml": tomlConfig,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadFromFile(writeFile(t, dir, name, content))
			require.NoError(t, err)

			require.Contains(t, cfg.Endpoints, "GET")
			assert.NotContains(t, cfg.Endpoints, "get")
			eps := cfg.Endpoints["GET"]
			require.Len(t, eps, 2)
			assert.Equal(t, "/users/{id}", eps[0].Path)
			assert.Equal(t, DefaultStatus, eps[0].Status)
			assert.Equal(t, `{"id":"{{id}}"}`, eps[0].Body)
			assert.Equal(t, "/teapot", eps[1].Path)
			assert.Equal(t, 418, eps[1].Status)

			require.Len(t, cfg.DB, 1)
			assert.Equal(t, "/db", cfg.DB[0].Path)
			assert.Equal(t, `{"list":[]}`, cfg.DB[0].Data)
			assert.Equal(t, 2, cfg.EndpointCount())
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile_MountFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "data"), 0o700))
	writeFile(t, filepath.Join(dir, "data"), "users.json", `[{"id":"1"}]`)
	path := writeFile(t, dir, "mockdb.yaml", "db:\n  - path: /users\n    file: data/users.json\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.DB, 1)
	assert.Equal(t, `[{"id":"1"}]`, cfg.DB[0].Data)
}

func TestLoadFromFile_InlineJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mockdb.yaml", `
endpoints:
  GET:
    - path: /ping
      json:
        ok: true
db:
  - path: /db
    json:
      list: [1, 2]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, cfg.Endpoints["GET"][0].Body)
	assert.JSONEq(t, `{"list":[1,2]}`, cfg.DB[0].Data)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{name: "missing file", file: "", want: ErrFileNotFound},
		{name: "empty file", file: "empty.json", content: "  \n", want: ErrEmptyFile},
		{name: "bad json", file: "bad.json", content: "{", want: ErrInvalidJSON},
		{name: "bad yaml", file: "bad.yaml", content: "endpoints: [", want: ErrInvalidYAML},
		{name: "bad toml", file: "bad.toml", content: "[[db]\npath=", want: ErrInvalidTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "does-not-exist.json")
			if tt.file != "" {
				path = writeFile(t, dir, tt.file, tt.content)
			}
			_, err := LoadFromFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFromFile_MissingMountFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mockdb.json", `{"db":[{"path":"/db","file":"nope.json"}]}`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db[0].file")
}

func TestParse_ConflictingMountSources(t *testing.T) {
	_, err := Parse([]byte(`{"db":[{"path":"/db","data":"{}","json":{"a":1}}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte(`{}`), Format("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_MergesMethodCase(t *testing.T) {
	cfg, err := Parse([]byte(`{"endpoints":{"GET":[{"path":"/a"}],"get":[{"path":"/b"}]}}`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, cfg.Endpoints, 1)
	paths := []string{cfg.Endpoints["GET"][0].Path, cfg.Endpoints["GET"][1].Path}
	assert.Equal(t, []string{"/a", "/b"}, paths)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("a.YAML"))
	assert.Equal(t, FormatTOML, FormatFromPath("a.toml"))
	assert.Equal(t, FormatJSON, FormatFromPath("a.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("config"))
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Endpoints: map[string][]Endpoint{
			"GET":   {{Path: "users"}, {Path: "/ok", Status: 200}, {Path: "/bad", Status: 42}},
			"BREW":  {{Path: "/coffee"}},
			"PATCH": {{Path: ""}},
		},
		DB: []Mount{
			{Path: "/db", Data: "{}"},
			{Path: "/db", Data: "[]"},
			{Path: "/empty"},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	assert.ElementsMatch(t, []string{
		"endpoints.BREW",
		"endpoints.GET[0].path",
		"endpoints.GET[2].status",
		"endpoints.PATCH[0].path",
	}, validationFields(t, err.(interface{ Unwrap() []error }).Unwrap()))
}

func TestValidate_IgnoresMounts(t *testing.T) {
	cfg := &Config{DB: []Mount{{Path: "db", Data: "{}"}, {Path: "/empty"}}}
	assert.NoError(t, cfg.Validate())
}

func TestMountWarnings(t *testing.T) {
	cfg := &Config{
		DB: []Mount{
			{Path: "/db", Data: "{}"},
			{Path: "/db", Data: "[]"},
			{Path: "/empty"},
			{Path: "relative", Data: "{}"},
			{Data: "{}"},
			{Path: "/other", Data: "{"},
		},
	}

	warnings := cfg.MountWarnings()
	assert.Equal(t, []string{
		"db[1].path",
		"db[2]",
		"db[3].path",
		"db[4].path",
	}, validationFields(t, warnings))
	assert.Contains(t, warnings[0].Error(), "shadowed by db[0]")

	assert.Empty(t, (&Config{DB: []Mount{{Path: "/db", Data: "{}"}}}).MountWarnings())
}

func validationFields(t *testing.T, errs []error) []string {
	t.Helper()
	var fields []string
	for _, e := range errs {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		fields = append(fields, ve.Field)
	}
	return fields
}

func TestValidate_EmptyConfig(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, int64(10<<20), cfg.MaxBodySize)
	assert.Positive(t, cfg.ShutdownTimeout)
}
