// Package template renders static endpoint bodies.
//
// Expressions are written as {{name}} with optional inner whitespace:
//
//   - {{path}} - request path
//   - {{body}} - raw request body
//   - {{rand}} - integer in [0, 100), shared by all occurrences in a body
//   - {{arg.NAME}} - query argument, with " and \ escaped for JSON strings
//   - {{NAME}} - path parameter bound by the route template, e.g. {{id}}
//     for /users/{id}
//   - {{method}} - request method
//   - {{uuid}} - random UUID v4
//   - {{now}} - current time in RFC3339 format
//   - {{timestamp}} - current Unix timestamp
//   - {{request.body.EXPR}} - JSONPath $.EXPR evaluated against the JSON
//     request body, e.g. {{request.body.user.name}} or
//     {{request.body.items[0].id}}
//
// Unknown expressions are left in place.
package template
