package shelf

import "slices"

// File is a titled link in the catalog. Tags are the names of the folders
// between the root (exclusive) and the file.
type File struct {
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Tags  []string `json:"tags"`
}

// Folder is a catalog node holding files and named subfolders.
type Folder struct {
	Title    string             `json:"title"`
	Files    []*File            `json:"files"`
	Children map[string]*Folder `json:"subfolders"`
}

// SortedChildNames returns the subfolder names in display order.
func (f *Folder) SortedChildNames() []string {
	names := make([]string, 0, len(f.Children))
	for name := range f.Children {
		names = append(names, name)
	}
	SortTitles(names)
	return names
}

// SortedFiles returns a sorted copy of the folder's files.
func (f *Folder) SortedFiles() []*File {
	files := slices.Clone(f.Files)
	SortFiles(files)
	return files
}

// Catalog is an immutable snapshot of the document tree.
// It is safe for concurrent reads once loaded.
type Catalog struct {
	Root *Folder
}

// Title returns the name of the root folder.
func (c *Catalog) Title() string {
	if c.Root == nil {
		return ""
	}
	return c.Root.Title
}

// Folder walks path from the root and returns the folder it names.
// The bool result is false if any segment does not exist.
func (c *Catalog) Folder(path Path) (*Folder, bool) {
	if c.Root == nil {
		return nil, false
	}
	folder := c.Root
	for _, name := range path {
		child, ok := folder.Children[name]
		if !ok {
			return nil, false
		}
		folder = child
	}
	return folder, true
}

// Walk visits every folder depth-first, starting at the root.
// Children are visited in display order so traversal is deterministic.
func (c *Catalog) Walk(fn func(path Path, folder *Folder)) {
	if c.Root == nil {
		return
	}
	var walk func(path Path, folder *Folder)
	walk = func(path Path, folder *Folder) {
		fn(path, folder)
		for _, name := range folder.SortedChildNames() {
			walk(path.Child(name), folder.Children[name])
		}
	}
	walk(Path{}, c.Root)
}

// CatalogStats summarizes the size of a catalog.
type CatalogStats struct {
	Folders int
	Files   int
}

// Stats counts the folders (including the root) and files in the catalog.
func (c *Catalog) Stats() CatalogStats {
	var stats CatalogStats
	c.Walk(func(_ Path, folder *Folder) {
		stats.Folders++
		stats.Files += len(folder.Files)
	})
	return stats
}
