package shelf

import "strings"

// Search returns every file in the catalog matching query, sorted by title.
//
// The query is split on whitespace into lowercase terms. A file matches when
// every term is a substring of its lowercased title or of at least one of its
// lowercased tags. A query without terms matches every file.
func Search(catalog *Catalog, query string) []*File {
	terms := strings.Fields(strings.ToLower(query))

	var results []*File
	catalog.Walk(func(_ Path, folder *Folder) {
		for _, file := range folder.Files {
			if matches(file, terms) {
				results = append(results, file)
			}
		}
	})
	SortFiles(results)
	return results
}

func matches(file *File, terms []string) bool {
	title := strings.ToLower(file.Title)
	tags := make([]string, len(file.Tags))
	for i, tag := range file.Tags {
		tags[i] = strings.ToLower(tag)
	}

	for _, term := range terms {
		if strings.Contains(title, term) {
			continue
		}
		found := false
		for _, tag := range tags {
			if strings.Contains(tag, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// NormalizeQuery collapses runs of whitespace and trims the query.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
