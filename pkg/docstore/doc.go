// Package docstore serves mutable JSON documents over REST-style paths.
//
// A Store owns one document mounted under a path prefix. The rest of the
// request path addresses a node inside the document:
//
//	store, _ := docstore.New("/db", `{"list":[{"id":"1","v":"a"},{"id":"2","v":"b"}]}`)
//	store.Process(docstore.MethodGet, "/db/list", map[string]string{"v": "a"}, "")
//	// [{"id":"1","v":"a"}]
//
// Path segments walk objects by key and arrays either by the element's "id"
// field or by numeric index, with the id tried first. Operations:
//
//   - GET returns the node; arrays are narrowed by query arguments, each one
//     requiring the named field to equal the argument (ANDed).
//   - POST appends the body to an array, or merges an object body into an
//     object.
//   - PATCH overwrites fields that already exist on an object; new keys are
//     ignored and arrays are rejected.
//   - DELETE with query arguments removes the matching array elements;
//     without them it removes the last path segment from its parent.
//
// A result that serializes to JSON null is reported as not found, so a null
// stored in the document cannot be told apart from a missing path.
//
// Registry holds the mounted stores in order and serializes every operation
// behind one mutex.
package docstore
