/*
Package engine serves mock responses over HTTP.

A Handler turns each request into a router.Request and writes the
router.Result back:

  - mount results are JSON on success (Content-Type: application/json) and
    the plain-text error message otherwise;
  - static results are rendered with the template engine and carry the
    Allow and Access-Control-Allow-* headers;
  - unmatched requests get a plain-text 404.

OPTIONS requests are answered before any lookup with 204 No Content and the
CORS preflight headers. Paths under /__mockdb/ are reserved for the admin
endpoints:

	GET  /__mockdb/health            liveness probe
	GET  /__mockdb/mounts            mount paths in lookup order
	GET  /__mockdb/snapshot?path=/db whole document mounted at /db
	POST /__mockdb/reset             restore every document

Server wraps the Handler with request logging and metrics and owns the
net/http listener.
*/
package engine
