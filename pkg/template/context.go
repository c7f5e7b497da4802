package template

import (
	"encoding/json"
	"sync"
)

// Context holds the request data available to a template.
type Context struct {
	Method string
	Path   string
	Body   string
	// Query holds single-valued query arguments.
	Query map[string]string
	// Params holds path parameters bound by the route template.
	Params map[string]string

	bodyOnce sync.Once
	bodyJSON any
	bodyOK   bool
}

// NewContext creates a template context for one request.
func NewContext(method, path, body string, query, params map[string]string) *Context {
	return &Context{
		Method: method,
		Path:   path,
		Body:   body,
		Query:  query,
		Params: params,
	}
}

// jsonBody decodes Body once and reports whether it was valid JSON.
func (c *Context) jsonBody() (any, bool) {
	c.bodyOnce.Do(func() {
		if c.Body == "" {
			return
		}
		if err := json.Unmarshal([]byte(c.Body), &c.bodyJSON); err == nil {
			c.bodyOK = true
		}
	})
	return c.bodyJSON, c.bodyOK
}
