package nav

import (
	"fmt"

	"github.com/fwojciec/shelf"
)

// item is an entry of a folder listing before pagination.
type item struct {
	folder string
	file   *shelf.File
}

// browse renders page of the folder at path: subfolders first, then files,
// each group in title order.
func (n *Navigator) browse(path shelf.Path, page int) (*View, error) {
	folder, ok := n.catalog.Folder(path)
	if !ok {
		return nil, shelf.Errorf(shelf.ENOTFOUND, "Folder not found.")
	}

	names := folder.SortedChildNames()
	files := folder.SortedFiles()
	items := make([]item, 0, len(names)+len(files))
	for _, name := range names {
		items = append(items, item{folder: name})
	}
	for _, file := range files {
		items = append(items, item{file: file})
	}

	w := shelf.Paginate(items, page, n.pageSize)

	title := path.Last()
	if path.IsRoot() {
		title = n.catalog.Title()
	}
	v := &View{Kind: shelf.ViewFolder, Title: title, Buttons: []shelf.Button{}}

	// Child tokens are minted only for folders on the visible page.
	for _, it := range w.Items {
		if it.file != nil {
			v.Buttons = append(v.Buttons, fileButton(it.file))
			continue
		}
		token := n.catalogTokens.GetOrCreate(path.Child(it.folder))
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonFolder,
			Label:   it.folder,
			Payload: shelf.BrowseAction(token, 0).Payload(),
		})
	}

	if w.HasPrev || w.HasNext {
		self := n.catalogTokens.GetOrCreate(path)
		if w.HasPrev {
			v.Buttons = append(v.Buttons, shelf.Button{
				Kind:    shelf.ButtonPrevious,
				Label:   LabelPrevious,
				Payload: shelf.BrowseAction(self, page-1).Payload(),
			})
		}
		if w.HasNext {
			v.Buttons = append(v.Buttons, shelf.Button{
				Kind:    shelf.ButtonNext,
				Label:   LabelNext,
				Payload: shelf.BrowseAction(self, page+1).Payload(),
			})
		}
	}

	if !path.IsRoot() {
		parent := n.catalogTokens.GetOrCreate(path.Parent())
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonParent,
			Label:   LabelParent,
			Payload: shelf.BrowseAction(parent, 0).Payload(),
		})
	}

	return v, nil
}

// search renders page of the results for query.
func (n *Navigator) search(query string, page int) (*View, error) {
	results := shelf.Search(n.catalog, query)
	if len(results) == 0 {
		return &View{
			Kind:    shelf.ViewSearch,
			Title:   fmt.Sprintf("No results found for %q.", query),
			Buttons: []shelf.Button{},
		}, nil
	}

	w := shelf.Paginate(results, page, n.pageSize)
	v := &View{
		Kind:    shelf.ViewSearch,
		Title:   fmt.Sprintf("Results for %q (page %d):", query, page+1),
		Buttons: make([]shelf.Button, 0, len(w.Items)+2),
	}
	for _, file := range w.Items {
		v.Buttons = append(v.Buttons, fileButton(file))
	}

	// Search state is just (query, page) and is carried in the clear.
	if w.HasPrev {
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonPrevious,
			Label:   LabelPrevious,
			Payload: shelf.SearchAction(query, page-1).Payload(),
		})
	}
	if w.HasNext {
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonNext,
			Label:   LabelNext,
			Payload: shelf.SearchAction(query, page+1).Payload(),
		})
	}
	return v, nil
}

func fileButton(file *shelf.File) shelf.Button {
	label := file.Title
	if label == "" {
		label = LabelUntitled
	}
	return shelf.Button{Kind: shelf.ButtonFile, Label: label, URL: file.URL}
}
