package shelf_test

import (
	"testing"

	"github.com/fwojciec/shelf"
	"github.com/stretchr/testify/assert"
)

func searchCatalog() *shelf.Catalog {
	return &shelf.Catalog{Root: &shelf.Folder{
		Title: "Library",
		Files: []*shelf.File{
			{Title: "Syllabus", URL: "u0"},
		},
		Children: map[string]*shelf.Folder{
			"2023": {
				Title: "2023",
				Files: []*shelf.File{
					{Title: "Esami Chimica", URL: "u1", Tags: []string{"2023"}},
				},
				Children: map[string]*shelf.Folder{
					"Algebra": {
						Title: "Algebra",
						Files: []*shelf.File{
							{Title: "10 Esami svolti", URL: "u2", Tags: []string{"2023", "Algebra"}},
							{Title: "2 Esami", URL: "u3", Tags: []string{"2023", "Algebra"}},
						},
					},
				},
			},
			"Algebra Lineare": {
				Title: "Algebra Lineare",
				Files: []*shelf.File{
					{Title: "Appunti", URL: "u4", Tags: []string{"Algebra Lineare"}},
				},
			},
		},
	}}
}

func titles(files []*shelf.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Title
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("requires every term to match", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog()

		assert.Equal(t, []string{"Esami Chimica"}, titles(shelf.Search(catalog, "chimica 2023")))
		assert.Empty(t, shelf.Search(catalog, "chimica 2022"))
	})

	t.Run("matches terms against title or any tag", func(t *testing.T) {
		t.Parallel()

		got := shelf.Search(searchCatalog(), "algebra")

		assert.Equal(t, []string{"2 Esami", "10 Esami svolti", "Appunti"}, titles(got))
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Syllabus"}, titles(shelf.Search(searchCatalog(), "SYLLABUS")))
	})

	t.Run("is independent of term order", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog()

		assert.Equal(t, shelf.Search(catalog, "algebra esami"), shelf.Search(catalog, "esami algebra"))
		assert.Equal(t, []string{"2 Esami", "10 Esami svolti"}, titles(shelf.Search(catalog, "esami algebra")))
	})

	t.Run("matches substrings of terms", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Appunti"}, titles(shelf.Search(searchCatalog(), "line pun")))
	})

	t.Run("returns identical results for identical input", func(t *testing.T) {
		t.Parallel()

		catalog := searchCatalog()

		assert.Equal(t, shelf.Search(catalog, "esami"), shelf.Search(catalog, "esami"))
	})

	t.Run("matches every file when the query has no terms", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, shelf.Search(searchCatalog(), " "), 5)
	})
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "algebra esami", shelf.NormalizeQuery("  algebra \t esami\n"))
	assert.Empty(t, shelf.NormalizeQuery("   "))
}
