// Package router decides which response answers a request.
//
// A Resolver asks the mount registry first; the first mounted document whose
// path prefixes the request path handles it, whatever the outcome. Requests
// no mount claims fall through to the static RouteTable, where the first
// endpoint of the request method whose template matches wins. Anything else
// is a 404 with "Method Not Found" or "Not Found".
package router
