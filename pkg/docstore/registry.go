package docstore

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/getmockd/mockdb/pkg/logging"
)

// Registry is the ordered set of mounted stores shared by all requests.
//
// One mutex covers the whole registry: choosing a store and running its
// operation happen in a single critical section, so operations on different
// stores are serialized too.
type Registry struct {
	mu     sync.Mutex
	stores []*Store
	log    *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report recovered panics.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{log: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount parses jsonText and appends a store for it at path. Stores are
// consulted in the order they were mounted.
func (r *Registry) Mount(path, jsonText string) (*Store, error) {
	s, err := New(path, jsonText)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = append(r.stores, s)
	return s, nil
}

// Dispatch runs a request against the first store whose mount path prefixes
// path. matched is false when no store claims the path, in which case result
// and err are empty.
//
// A panic raised while the store runs is recovered and reported as an
// internal error; the registry stays usable.
func (r *Registry) Dispatch(method Method, path string, args map[string]string, body string) (result string, matched bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("document store panicked", "method", method.String(), "path", path, "panic", fmt.Sprint(rec))
			result, matched, err = "", true, internal("Internal Server Error")
		}
	}()

	for _, s := range r.stores {
		if s.IsMatch(path) {
			result, err = s.Process(method, path, args, body)
			return result, true, err
		}
	}
	return "", false, nil
}

// Mounts returns the mount paths in lookup order.
func (r *Registry) Mounts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, len(r.stores))
	for i, s := range r.stores {
		paths[i] = s.RootPath()
	}
	return paths
}

// Len returns the number of mounted stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Snapshot returns the document mounted at exactly rootPath.
func (r *Registry) Snapshot(rootPath string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stores {
		if s.RootPath() == rootPath {
			doc, err := s.Snapshot()
			return doc, true, err
		}
	}
	return "", false, nil
}

// ResetAll restores every store to its initial document and returns the
// number of stores reset.
func (r *Registry) ResetAll() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stores {
		if err := s.Reset(); err != nil {
			return 0, fmt.Errorf("reset %q: %w", s.RootPath(), err)
		}
	}
	return len(r.stores), nil
}
