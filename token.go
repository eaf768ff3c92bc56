package shelf

// Token is an opaque handle for a Path within one tree. The type parameter
// names the tree (Catalog or Directory) so tokens minted by one registry
// cannot be passed to the other.
//
// Tokens live only in process memory. A token issued before a restart never
// resolves afterwards.
type Token[T any] string

// Token kinds for the two trees.
type (
	CatalogToken   = Token[Catalog]
	DirectoryToken = Token[Directory]
)

// Registry maps paths to tokens and back.
// Implementations must be safe for concurrent use.
type Registry[T any] interface {
	// Resolve returns the path registered for token.
	// The bool result is false if the token is unknown.
	Resolve(token Token[T]) (Path, bool)

	// GetOrCreate returns the token already registered for path, or mints,
	// records and returns a new one. Concurrent calls for the same path
	// observe the same token.
	GetOrCreate(path Path) Token[T]
}

// Registry kinds for the two trees.
type (
	CatalogRegistry   = Registry[Catalog]
	DirectoryRegistry = Registry[Directory]
)
