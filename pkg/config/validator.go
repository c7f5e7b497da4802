package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// validHTTPMethods are the methods an endpoint may be registered under.
var validHTTPMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"HEAD":    true,
	"OPTIONS": true,
}

// Validate checks the static endpoints for structural problems and returns
// every failure found, joined. Mounts are not checked here: a bad mount never
// stops the server, see MountWarnings.
func (c *Config) Validate() error {
	var errs []error

	for _, method := range sortedKeys(c.Endpoints) {
		if !validHTTPMethods[strings.ToUpper(method)] {
			errs = append(errs, &ValidationError{
				Field:   "endpoints." + method,
				Message: "unsupported HTTP method",
			})
			continue
		}
		for i, ep := range c.Endpoints[method] {
			field := fmt.Sprintf("endpoints.%s[%d]", method, i)
			if err := ep.validate(field); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// MountWarnings reports mounts that will be skipped or never reached when
// serving: a missing or relative path, no document source, or a path already
// claimed by an earlier mount. Documents are not parsed here; invalid JSON is
// found when the mount is loaded.
func (c *Config) MountWarnings() []error {
	var warnings []error

	seen := make(map[string]int, len(c.DB))
	for i, m := range c.DB {
		field := fmt.Sprintf("db[%d]", i)
		if err := m.validate(field); err != nil {
			warnings = append(warnings, err)
			continue
		}
		if prev, dup := seen[m.Path]; dup {
			warnings = append(warnings, &ValidationError{
				Field:   field + ".path",
				Message: fmt.Sprintf("duplicate mount path %q is shadowed by db[%d]", m.Path, prev),
			})
			continue
		}
		seen[m.Path] = i
	}

	return warnings
}

func (e Endpoint) validate(field string) error {
	if e.Path == "" {
		return &ValidationError{Field: field + ".path", Message: "path is required"}
	}
	if !strings.HasPrefix(e.Path, "/") {
		return &ValidationError{Field: field + ".path", Message: "path must start with /"}
	}
	if e.Status != 0 && (e.Status < 100 || e.Status > 599) {
		return &ValidationError{
			Field:   field + ".status",
			Message: fmt.Sprintf("status must be between 100 and 599, got %d", e.Status),
		}
	}
	return nil
}

func (m Mount) validate(field string) error {
	if m.Path == "" {
		return &ValidationError{Field: field + ".path", Message: "path is required"}
	}
	if !strings.HasPrefix(m.Path, "/") {
		return &ValidationError{Field: field + ".path", Message: "path must start with /"}
	}
	if m.Data == "" && m.File == "" && m.JSON == nil {
		return &ValidationError{Field: field, Message: "one of data, json or file is required"}
	}
	return nil
}
