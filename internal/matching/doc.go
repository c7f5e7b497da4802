// Package matching decides whether a request path matches a route template.
//
// Templates are slash-separated, and a segment wrapped in braces ({id}) is a
// wildcard bound to whatever the request has in that position:
//
//	matching.Matches("/users/{id}", "/users/5")   // true
//	matching.Extract("/users/5", "/users/{id}")   // {"id": "5"}, true
//
// Matching is segment-for-segment. Empty segments count, so a leading slash
// yields an empty first segment and a trailing slash adds one at the end.
// Callers normalize trailing slashes before matching.
package matching
