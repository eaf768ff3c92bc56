package mock

import "github.com/fwojciec/shelf"

var (
	_ shelf.CatalogRegistry   = (*Registry[shelf.Catalog])(nil)
	_ shelf.DirectoryRegistry = (*Registry[shelf.Directory])(nil)
)

// Registry is a mock implementation of shelf.Registry.
type Registry[T any] struct {
	ResolveFn     func(token shelf.Token[T]) (shelf.Path, bool)
	GetOrCreateFn func(path shelf.Path) shelf.Token[T]
}

func (r *Registry[T]) Resolve(token shelf.Token[T]) (shelf.Path, bool) {
	return r.ResolveFn(token)
}

func (r *Registry[T]) GetOrCreate(path shelf.Path) shelf.Token[T] {
	return r.GetOrCreateFn(path)
}
