package slog

import (
	"log/slog"

	"github.com/fwojciec/shelf"
)

// Ensure LoggingRegistry implements shelf.Registry.
var (
	_ shelf.CatalogRegistry   = (*LoggingRegistry[shelf.Catalog])(nil)
	_ shelf.DirectoryRegistry = (*LoggingRegistry[shelf.Directory])(nil)
)

// LoggingRegistry wraps a token registry with debug logging. Lookups of
// unknown tokens are logged at info level since they usually mean a client
// kept a button from before a restart.
type LoggingRegistry[T any] struct {
	next   shelf.Registry[T]
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry. The tree name is attached
// to every record.
func NewLoggingRegistry[T any](next shelf.Registry[T], tree string, logger *slog.Logger) *LoggingRegistry[T] {
	return &LoggingRegistry[T]{next: next, logger: logger.With("tree", tree)}
}

// Resolve delegates to the wrapped registry and logs the outcome.
func (r *LoggingRegistry[T]) Resolve(token shelf.Token[T]) (shelf.Path, bool) {
	path, ok := r.next.Resolve(token)
	if !ok {
		r.logger.Info("unknown token", "token", string(token))
		return path, ok
	}
	r.logger.Debug("token resolved", "token", string(token), "path", path.String())
	return path, ok
}

// GetOrCreate delegates to the wrapped registry and logs the token.
func (r *LoggingRegistry[T]) GetOrCreate(path shelf.Path) shelf.Token[T] {
	token := r.next.GetOrCreate(path)
	r.logger.Debug("token issued", "token", string(token), "path", path.String())
	return token
}
