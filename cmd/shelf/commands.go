package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/shelf"
	shelfhttp "github.com/fwojciec/shelf/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := shelfhttp.NewServer()
	s.Addr = c.Addr
	s.Navigator = deps.Navigator
	s.Gatherer = deps.Gatherer
	s.Logger = deps.Logger
	if c.Rate > 0 {
		s.Limiter = shelfhttp.NewClientLimiter(c.Rate, c.Burst)
	}

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	deps.Logger.Info("listening", "url", s.URL())

	<-deps.Ctx.Done()
	deps.Logger.Info("shutting down")
	return s.Close()
}

// Run executes the root command.
func (c *RootCmd) Run(deps *Dependencies) error {
	return writeView(deps, deps.Navigator.OpenRoot(), c.JSON)
}

// Run executes the search command. Pages after the first are reached with
// the same payload the Next button carries.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	if c.Page == 0 {
		return writeView(deps, deps.Navigator.HandleSearch(query), c.JSON)
	}
	payload := shelf.SearchAction(shelf.NormalizeQuery(query), c.Page).Payload()
	return writeView(deps, deps.Navigator.HandleAction(payload), c.JSON)
}

// Run executes the action command.
func (c *ActionCmd) Run(deps *Dependencies) error {
	return writeView(deps, deps.Navigator.HandleAction(c.Payload), c.JSON)
}

// Run executes the directory command.
func (c *DirectoryCmd) Run(deps *Dependencies) error {
	return writeView(deps, deps.Navigator.OpenDirectory(), c.JSON)
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if deps.Snapshot == nil {
		return fmt.Errorf("no snapshot loaded")
	}
	cs := deps.Snapshot.Catalog.Stats()
	ds := deps.Snapshot.Directory.Stats()
	fmt.Fprintf(deps.Stdout, "catalog    %q: %d folders, %d files (xxhash %016x)\n",
		deps.Snapshot.Catalog.Title(), cs.Folders, cs.Files, deps.Snapshot.CatalogChecksum)
	fmt.Fprintf(deps.Stdout, "directory  %d years, %d subjects, %d contacts (xxhash %016x)\n",
		ds.Years, ds.Subjects, ds.Contacts, deps.Snapshot.DirectoryChecksum)
	return nil
}
