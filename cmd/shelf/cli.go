package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shelf"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Navigator shelf.Navigator
	Snapshot  *Snapshot
	Gatherer  prometheus.Gatherer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"TOML configuration file"`
	Catalog   string          `default:"catalog.json" env:"SHELF_CATALOG" type:"path" help:"Catalog snapshot (.json, .yaml)"`
	Contacts  string          `default:"emails.json" env:"SHELF_CONTACTS" type:"path" help:"Contact directory snapshot (.json, .yaml)"`
	PageSize  int             `default:"10" env:"SHELF_PAGE_SIZE" help:"Items per page"`
	LogLevel  string          `default:"info" env:"SHELF_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string          `default:"text" env:"SHELF_LOG_FORMAT" enum:"text,json" help:"Log format"`

	Serve     ServeCmd     `cmd:"" help:"Serve views over HTTP"`
	Root      RootCmd      `cmd:"" help:"Show the catalog root"`
	Search    SearchCmd    `cmd:"" help:"Search files by title and tags"`
	Action    ActionCmd    `cmd:"" help:"Handle an action payload. Tokens live only as long as one process, so nav: and mail:<token> payloads printed by an earlier invocation are not found; search: and mail:back work from the shell."`
	Directory DirectoryCmd `cmd:"" help:"Show the contact directory"`
	Check     CheckCmd     `cmd:"" help:"Validate snapshots and print statistics"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `default:":8080" env:"SHELF_ADDR" help:"Listen address"`
	Rate  float64 `default:"5" env:"SHELF_RATE" help:"Requests per second allowed per client (0 disables limiting)"`
	Burst int     `default:"10" env:"SHELF_BURST" help:"Request burst allowed per client"`
}

// RootCmd is the "root" subcommand.
type RootCmd struct {
	JSON bool `help:"Print the view as JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms"`
	Page  int      `short:"p" default:"0" help:"Result page, starting at 0"`
	JSON  bool     `help:"Print the view as JSON"`
}

// ActionCmd is the "action" subcommand. Each invocation starts with empty
// token registries, so only search: and mail:back payloads resolve.
type ActionCmd struct {
	Payload string `arg:"" help:"Action payload, e.g. search:<query>:<page> or mail:back"`
	JSON    bool   `help:"Print the view as JSON"`
}

// DirectoryCmd is the "directory" subcommand.
type DirectoryCmd struct {
	JSON bool `help:"Print the view as JSON"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}
