package mock

import "github.com/fwojciec/shelf"

var _ shelf.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of shelf.Navigator.
type Navigator struct {
	OpenRootFn      func() *shelf.View
	HandleSearchFn  func(query string) *shelf.View
	HandleActionFn  func(payload string) *shelf.View
	OpenDirectoryFn func() *shelf.View
}

func (n *Navigator) OpenRoot() *shelf.View {
	return n.OpenRootFn()
}

func (n *Navigator) HandleSearch(query string) *shelf.View {
	return n.HandleSearchFn(query)
}

func (n *Navigator) HandleAction(payload string) *shelf.View {
	return n.HandleActionFn(payload)
}

func (n *Navigator) OpenDirectory() *shelf.View {
	return n.OpenDirectoryFn()
}
