// Package inmem provides in-memory implementations of shelf services.
package inmem

import (
	"slices"
	"sync"

	"github.com/fwojciec/shelf"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ shelf.CatalogRegistry   = (*Registry[shelf.Catalog])(nil)
	_ shelf.DirectoryRegistry = (*Registry[shelf.Directory])(nil)
)

// DefaultTokenLength is the number of characters in a minted token.
const DefaultTokenLength = 8

// Registry is a process-local, grow-only mapping between paths and tokens.
// It is safe for concurrent use by multiple goroutines.
type Registry[T any] struct {
	mu      sync.Mutex
	byToken map[shelf.Token[T]]shelf.Path
	byPath  map[string]shelf.Token[T]

	generate func() string
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	generate func() string
}

// WithGenerator sets the function used to mint candidate tokens.
// Candidates that are already taken are discarded and generation is retried.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		o.generate = fn
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry[T any](opts ...Option) *Registry[T] {
	o := options{generate: NewToken}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		byToken:  make(map[shelf.Token[T]]shelf.Path),
		byPath:   make(map[string]shelf.Token[T]),
		generate: o.generate,
	}
}

// NewToken returns the first DefaultTokenLength characters of a random UUID.
func NewToken() string {
	return uuid.NewString()[:DefaultTokenLength]
}

// Resolve returns the path registered for token.
func (r *Registry[T]) Resolve(token shelf.Token[T]) (shelf.Path, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path, ok := r.byToken[token]
	if !ok {
		return nil, false
	}
	return slices.Clone(path), true
}

// GetOrCreate returns the token for path, minting one on first use.
func (r *Registry[T]) GetOrCreate(path shelf.Path) shelf.Token[T] {
	key := path.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.byPath[key]; ok {
		return token
	}

	var token shelf.Token[T]
	for {
		token = shelf.Token[T](r.generate())
		if _, taken := r.byToken[token]; !taken && token != "" {
			break
		}
	}

	stored := slices.Clone(path)
	if stored == nil {
		stored = shelf.Path{}
	}
	r.byToken[token] = stored
	r.byPath[key] = token
	return token
}

// Len returns the number of registered paths.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byToken)
}
