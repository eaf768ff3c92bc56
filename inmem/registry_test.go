package inmem_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/shelf"
	"github.com/fwojciec/shelf/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("returns the same token for the same path", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()

		first := r.GetOrCreate(shelf.Path{"Math", "Algebra"})
		second := r.GetOrCreate(shelf.Path{"Math", "Algebra"})

		assert.Equal(t, first, second)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("returns distinct tokens for distinct paths", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()
		seen := make(map[shelf.CatalogToken]shelf.Path)

		for i := range 5000 {
			path := shelf.Path{fmt.Sprintf("year-%d", i%50), fmt.Sprintf("subject-%d", i)}
			token := r.GetOrCreate(path)
			prev, dup := seen[token]
			require.False(t, dup, "token %q issued for %v and %v", token, prev, path)
			seen[token] = path
		}
		assert.Equal(t, 5000, r.Len())
	})

	t.Run("mints short tokens", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Directory]()

		token := r.GetOrCreate(shelf.Path{"2024"})

		assert.Len(t, string(token), inmem.DefaultTokenLength)
	})

	t.Run("registers the root path", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()

		token := r.GetOrCreate(nil)
		path, ok := r.Resolve(token)

		require.True(t, ok)
		assert.Empty(t, path)
		assert.Equal(t, token, r.GetOrCreate(shelf.Path{}))
	})

	t.Run("does not confuse paths whose joined names are equal", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()

		a := r.GetOrCreate(shelf.Path{"a::b"})
		b := r.GetOrCreate(shelf.Path{"a", "b"})

		assert.NotEqual(t, a, b)
	})

	t.Run("regenerates on collision", func(t *testing.T) {
		t.Parallel()

		candidates := []string{"aaaa", "aaaa", "aaaa", "bbbb"}
		var i int
		r := inmem.NewRegistry[shelf.Catalog](inmem.WithGenerator(func() string {
			c := candidates[i]
			i++
			return c
		}))

		first := r.GetOrCreate(shelf.Path{"one"})
		second := r.GetOrCreate(shelf.Path{"two"})

		assert.Equal(t, shelf.CatalogToken("aaaa"), first)
		assert.Equal(t, shelf.CatalogToken("bbbb"), second)
		path, ok := r.Resolve(first)
		require.True(t, ok)
		assert.Equal(t, shelf.Path{"one"}, path)
	})

	t.Run("is not affected by later mutation of the caller's path", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()
		path := shelf.Path{"Math", "Algebra"}

		token := r.GetOrCreate(path)
		path[1] = "Geometry"

		resolved, ok := r.Resolve(token)
		require.True(t, ok)
		assert.Equal(t, shelf.Path{"Math", "Algebra"}, resolved)
	})

	t.Run("allocates one token under concurrent first use", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()
		const workers = 64

		var wg sync.WaitGroup
		tokens := make([]shelf.CatalogToken, workers)
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tokens[w] = r.GetOrCreate(shelf.Path{"Shared", "Folder"})
			}()
		}
		wg.Wait()

		for _, token := range tokens {
			assert.Equal(t, tokens[0], token)
		}
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("returns the registered path", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()
		token := r.GetOrCreate(shelf.Path{"Physics", "Exams"})

		path, ok := r.Resolve(token)

		require.True(t, ok)
		assert.Equal(t, shelf.Path{"Physics", "Exams"}, path)
	})

	t.Run("reports unknown tokens as not found", func(t *testing.T) {
		t.Parallel()

		r := inmem.NewRegistry[shelf.Catalog]()
		r.GetOrCreate(shelf.Path{"Physics"})

		for _, token := range []shelf.CatalogToken{"", "deadbeef", "zzzzzzzz", "Physics"} {
			_, ok := r.Resolve(token)
			assert.False(t, ok, "token %q", token)
		}
	})

	t.Run("tokens from a previous registry are not found after a restart", func(t *testing.T) {
		t.Parallel()

		before := inmem.NewRegistry[shelf.Catalog]()
		token := before.GetOrCreate(shelf.Path{"Physics"})

		after := inmem.NewRegistry[shelf.Catalog]()
		_, ok := after.Resolve(token)

		assert.False(t, ok)
		assert.Equal(t, 0, after.Len(), "resolve must not register anything")
	})
}
