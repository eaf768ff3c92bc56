// Package nav implements the stateless navigation protocol over the catalog
// and the contact directory.
//
// The navigator holds no per-user state: each view is computed from the
// action payload alone. The only shared mutable state is the pair of token
// registries, which are safe for concurrent use.
package nav

import "github.com/fwojciec/shelf"

// Compile-time interface verification.
var _ shelf.Navigator = (*Navigator)(nil)

// Button labels.
const (
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelParent   = "Back"
	LabelSubjects = "Subjects"
	LabelYears    = "Years"

	// LabelUntitled is shown for files without a title.
	LabelUntitled = "File"
)

// Navigator renders views for the catalog and the directory.
type Navigator struct {
	catalog   *shelf.Catalog
	directory *shelf.Directory

	catalogTokens   shelf.CatalogRegistry
	directoryTokens shelf.DirectoryRegistry

	pageSize int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithPageSize sets the number of items per page.
// Defaults to shelf.DefaultPageSize.
func WithPageSize(n int) Option {
	return func(nav *Navigator) {
		if n > 0 {
			nav.pageSize = n
		}
	}
}

// NewNavigator creates a Navigator over the given snapshots. The registries
// must be dedicated to this navigator; they grow as views are rendered.
func NewNavigator(
	catalog *shelf.Catalog,
	directory *shelf.Directory,
	catalogTokens shelf.CatalogRegistry,
	directoryTokens shelf.DirectoryRegistry,
	opts ...Option,
) *Navigator {
	n := &Navigator{
		catalog:         catalog,
		directory:       directory,
		catalogTokens:   catalogTokens,
		directoryTokens: directoryTokens,
		pageSize:        shelf.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// PageSize returns the number of items per page.
func (n *Navigator) PageSize() int {
	return n.pageSize
}

// OpenRoot renders the first page of the catalog root.
func (n *Navigator) OpenRoot() *View {
	return render(n.browse(shelf.Path{}, 0))
}

// HandleSearch renders the first page of results for query.
func (n *Navigator) HandleSearch(query string) *View {
	query = shelf.NormalizeQuery(query)
	if query == "" {
		return shelf.ErrorView(shelf.Errorf(shelf.EINVALID, "Enter a search query, e.g. \"algebra exams\"."))
	}
	return render(n.search(query, 0))
}

// HandleAction decodes payload and renders the view it addresses.
func (n *Navigator) HandleAction(payload string) *View {
	action, err := shelf.ParseAction(payload)
	if err != nil {
		return shelf.ErrorView(err)
	}
	return render(n.Dispatch(action))
}

// OpenDirectory renders the list of directory years.
func (n *Navigator) OpenDirectory() *View {
	return render(n.directoryRoot())
}

// Dispatch renders the view addressed by a decoded action.
func (n *Navigator) Dispatch(action shelf.Action) (*View, error) {
	switch action.Kind {
	case shelf.ActionBrowse:
		path, ok := n.catalogTokens.Resolve(action.Token)
		if !ok {
			return nil, shelf.Errorf(shelf.ENOTFOUND, "Folder not found or link expired.")
		}
		return n.browse(path, action.Page)
	case shelf.ActionSearch:
		return n.search(action.Query, action.Page)
	case shelf.ActionDirectoryRoot:
		return n.directoryRoot()
	case shelf.ActionDirectoryYear:
		return n.directoryYear(action.YearToken)
	case shelf.ActionDirectorySubject:
		return n.directorySubject(action.SubjectToken)
	}
	return nil, shelf.Errorf(shelf.EMALFORMED, "unsupported action %s", action.Kind)
}

// View is an alias kept local so the rendering helpers read naturally.
type View = shelf.View

func render(v *View, err error) *View {
	if err != nil {
		return shelf.ErrorView(err)
	}
	return v
}
