package template

import (
	"encoding/json"
	"fmt"
	mathrand "math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/jp"
)

// Engine renders static response bodies. It holds no state and is safe for
// concurrent use.
type Engine struct {
	now func() time.Time
	rnd func() int
}

// New creates a template engine.
func New() *Engine {
	return &Engine{
		now: time.Now,
		rnd: func() int { return mathrand.IntN(100) },
	}
}

// templateRegex matches {{expression}} patterns with optional whitespace.
var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Render replaces every {{expression}} in body. Expressions are evaluated
// against the template text only, so request data that itself contains
// braces is copied through verbatim. Unknown expressions are left as they
// are, except request.body lookups, which render empty when nothing is found.
//
// {{rand}} yields one value per call; every occurrence in body shares it.
func (e *Engine) Render(body string, ctx *Context) string {
	if ctx == nil {
		ctx = &Context{}
	}
	rnd := -1

	return templateRegex.ReplaceAllStringFunc(body, func(match string) string {
		inner := templateRegex.FindStringSubmatch(match)
		if len(inner) < 2 {
			return match
		}
		expr := strings.TrimSpace(inner[1])

		if expr == "rand" {
			if rnd < 0 {
				rnd = e.rnd()
			}
			return strconv.Itoa(rnd)
		}
		if value, ok := e.evaluate(expr, ctx); ok {
			return value
		}
		return match
	})
}

// evaluate returns the value of one expression and whether it is known.
func (e *Engine) evaluate(expr string, ctx *Context) (string, bool) {
	switch expr {
	case "path":
		return ctx.Path, true
	case "body":
		return ctx.Body, true
	}

	if name, ok := strings.CutPrefix(expr, "arg."); ok {
		value, found := ctx.Query[name]
		if !found {
			return "", false
		}
		return escapeArg(value), true
	}

	if value, ok := ctx.Params[expr]; ok {
		return value, true
	}

	switch expr {
	case "method":
		return ctx.Method, true
	case "uuid":
		return uuid.New().String(), true
	case "now":
		return e.now().Format(time.RFC3339), true
	case "timestamp":
		return strconv.FormatInt(e.now().Unix(), 10), true
	}

	if path, ok := strings.CutPrefix(expr, "request.body."); ok {
		return evaluateBodyPath(path, ctx), true
	}
	return "", false
}

// escapeArg makes a query value safe to embed in a JSON string literal.
func escapeArg(value string) string {
	if !strings.ContainsAny(value, `"\`) {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) + 4)
	for _, r := range value {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// evaluateBodyPath runs the JSONPath $.path against the request body and
// formats the first result.
func evaluateBodyPath(path string, ctx *Context) string {
	data, ok := ctx.jsonBody()
	if !ok {
		return ""
	}
	expr, err := jp.ParseString("$." + path)
	if err != nil {
		return ""
	}
	results := expr.Get(data)
	if len(results) == 0 {
		return ""
	}
	return formatValue(results[0])
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}
