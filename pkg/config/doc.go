// Package config loads the mockdb configuration file.
//
// A configuration declares static endpoints grouped by HTTP method and the
// JSON documents to mount. The same document can be written as JSON, YAML or
// TOML; the format is chosen by file extension:
//
//	endpoints:
//	  GET:
//	    - path: /users/{id}
//	      status: 200
//	      body: '{"id":"{{id}}"}'
//	db:
//	  - path: /db
//	    data: '{"list":[]}'
//	  - path: /fixtures
//	    file: fixtures.json
//
// Endpoint and mount lists keep their declared order. A loaded Config is
// treated as immutable and passed explicitly to the components that serve it.
package config
