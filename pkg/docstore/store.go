package docstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getmockd/mockdb/pkg/jsontree"
)

// Store is a JSON document mounted under a path prefix. Requests below the
// prefix read and edit the document by path.
//
// A Store is not safe for concurrent use; Registry serializes access.
type Store struct {
	rootPath string
	seed     string
	doc      *jsontree.Value
}

// New parses jsonText and mounts it at rootPath.
func New(rootPath, jsonText string) (*Store, error) {
	doc, err := jsontree.ParseString(jsonText)
	if err != nil {
		return nil, fmt.Errorf("invalid db json for %q: %w", rootPath, err)
	}
	return &Store{rootPath: rootPath, seed: jsonText, doc: doc}, nil
}

// RootPath returns the mount path the store was created with.
func (s *Store) RootPath() string {
	return s.rootPath
}

// IsMatch reports whether path falls under the store's mount path.
// It is a plain string prefix test.
func (s *Store) IsMatch(path string) bool {
	return strings.HasPrefix(path, s.rootPath)
}

// Snapshot returns the whole document as JSON.
func (s *Store) Snapshot() (string, error) {
	b, err := jsontree.Marshal(s.doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Reset restores the document the store was created with.
func (s *Store) Reset() error {
	doc, err := jsontree.ParseString(s.seed)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Process runs one request against the document and returns the JSON
// response body. Failures are *Error values carrying an HTTP status.
//
// path is the full request path; the mount path (without a trailing slash)
// must be its prefix. body is parsed as JSON; an unparseable body is treated
// as absent.
func (s *Store) Process(method Method, path string, args map[string]string, body string) (string, error) {
	rel, err := s.relativePath(path)
	if err != nil {
		return "", err
	}

	var payload *jsontree.Value
	if parsed, err := jsontree.ParseString(body); err == nil {
		payload = parsed
	}

	switch method {
	case MethodGet:
		return s.get(rel, args)
	case MethodPost:
		return s.post(rel, payload)
	case MethodPatch:
		return s.patch(rel, payload)
	case MethodDelete:
		return s.delete(rel, args)
	case MethodPut, MethodHead, MethodOptions, MethodUnknown:
		return "", methodNotAllowed()
	}
	return "", methodNotAllowed()
}

// relativePath strips the mount path and one trailing slash from path.
func (s *Store) relativePath(path string) (string, error) {
	root := strings.TrimSuffix(s.rootPath, "/")
	rel, ok := strings.CutPrefix(path, root)
	if !ok {
		return "", badRequest("Invalid Path")
	}
	return strings.TrimSuffix(rel, "/"), nil
}

func (s *Store) get(rel string, args map[string]string) (string, error) {
	node, ok := resolve(s.doc, segments(rel))
	if !ok {
		return "", notFound("Not Found")
	}
	if node.IsArray() && len(args) > 0 {
		node = jsontree.Array(filterElements(node.Elements(), args, true)...)
	}
	return serialize(node)
}

func (s *Store) post(rel string, payload *jsontree.Value) (string, error) {
	node, ok := resolve(s.doc, segments(rel))
	if !ok {
		return "", badRequest("Invalid Path")
	}

	switch node.Kind() {
	case jsontree.KindArray:
		if payload == nil {
			return "", badRequest("Invalid Body")
		}
		node.Append(payload)
	case jsontree.KindObject, jsontree.KindNull:
		if !payload.IsObject() {
			return "", badRequest("Invalid Body")
		}
		if node.IsNull() {
			node.Assign(jsontree.Object())
		}
		for _, key := range payload.Keys() {
			node.Set(key, payload.Field(key))
		}
	default:
		return "", badRequest("Invalid Path")
	}
	return serialize(node)
}

func (s *Store) patch(rel string, payload *jsontree.Value) (string, error) {
	node, ok := resolve(s.doc, segments(rel))
	if !ok {
		return "", notFound("Path Not Found")
	}
	if node.IsArray() {
		return "", badRequest("Invalid Path")
	}
	if !payload.IsObject() {
		return "", badRequest("Invalid Body")
	}
	for _, key := range payload.Keys() {
		if node.Has(key) {
			node.Set(key, payload.Field(key))
		}
	}
	return serialize(node)
}

func (s *Store) delete(rel string, args map[string]string) (string, error) {
	segs := segments(rel)

	if len(args) > 0 {
		node, ok := resolve(s.doc, segs)
		if !ok {
			return "", notFound("Path Not Found")
		}
		if !node.IsArray() {
			return "", badRequest("Invalid Path")
		}
		node.SetElements(filterElements(node.Elements(), args, false))
		return serialize(node)
	}

	if len(segs) == 0 {
		return "", badRequest("Can't remove all the db")
	}
	last := segs[len(segs)-1]
	parent, ok := resolve(s.doc, segs[:len(segs)-1])
	if !ok {
		return "", notFound("Parent not found")
	}

	switch parent.Kind() {
	case jsontree.KindObject:
		parent.Delete(last)
	case jsontree.KindArray:
		if i, ok := arrayIndex(parent, last); ok {
			parent.RemoveAt(i)
		}
	}
	return serialize(parent)
}

// serialize encodes a result node. A null result is reported as not found.
func serialize(node *jsontree.Value) (string, error) {
	b, err := jsontree.Marshal(node)
	if err != nil {
		return "", internal("Error parsing result")
	}
	if string(b) == "null" {
		return "", notFound("Not Found")
	}
	return string(b), nil
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
