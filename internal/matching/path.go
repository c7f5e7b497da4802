package matching

import "strings"

// Matches reports whether path matches the route template.
// Both are split on "/" and must have the same number of segments.
// A template segment of the form {name} matches any path segment, including
// an empty one; every other segment must be equal to its counterpart.
//
// Examples:
//   - "/users/{id}" matches "/users/5"
//   - "/users/{id}/x" does not match "/users/5"
//   - "/users/{id}" does not match "/users/5/" (trailing slash adds a segment)
func Matches(template, path string) bool {
	templateParts := strings.Split(template, "/")
	pathParts := strings.Split(path, "/")

	if len(templateParts) != len(pathParts) {
		return false
	}

	for i, part := range templateParts {
		if part == pathParts[i] || isParam(part) {
			continue
		}
		return false
	}

	return true
}

// Extract binds the {name} segments of template to the aligned segments of path.
// Segment position decides the binding, so a repeated name keeps the last value.
// The second return value is false when the two do not line up structurally;
// callers should treat that as "no bindings" and normally call Matches first.
//
// Example: Extract("/users/5", "/users/{id}") returns {"id": "5"}, true.
func Extract(path, template string) (map[string]string, bool) {
	templateParts := strings.Split(template, "/")
	pathParts := strings.Split(path, "/")

	if len(templateParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range templateParts {
		if part == pathParts[i] {
			continue
		}
		if !isParam(part) {
			return nil, false
		}
		params[part[1:len(part)-1]] = pathParts[i]
	}

	return params, true
}

// isParam reports whether a template segment is a {name} wildcard.
func isParam(segment string) bool {
	return len(segment) >= 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}
