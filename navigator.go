package shelf

// Navigator is the entry point used by the presentation layer.
//
// Every method returns a view; failures are rendered as error views
// (Kind == ViewError, Code set) and never returned as errors.
type Navigator interface {
	// OpenRoot renders the first page of the catalog root.
	OpenRoot() *View

	// HandleSearch renders the first page of results for query.
	// A blank query renders an EINVALID view.
	HandleSearch(query string) *View

	// HandleAction decodes payload and renders the view it addresses.
	HandleAction(payload string) *View

	// OpenDirectory renders the list of directory years.
	OpenDirectory() *View
}
