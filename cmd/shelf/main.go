package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shelf"
	"github.com/fwojciec/shelf/inmem"
	"github.com/fwojciec/shelf/nav"
	shelfprom "github.com/fwojciec/shelf/prometheus"
	shelfslog "github.com/fwojciec/shelf/slog"
	"github.com/fwojciec/shelf/toml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loaded snapshots. Populated by Run() unless set beforehand.
	Snapshot *Snapshot

	// Navigator for end-to-end testing. Built from Snapshot when nil.
	Navigator shelf.Navigator

	// Metrics registry shared by the navigator decorator and /metrics.
	Registry *prometheus.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Registry: prometheus.NewRegistry(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shelf"),
		kong.Description("Browse a document catalog and a contact directory."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(toml.Loader),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shelf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = NewLogger(stderr, cli.LogLevel, cli.LogFormat)

	if m.Snapshot == nil && m.Navigator == nil {
		m.Snapshot, err = LoadSnapshot(ctx, cli.Catalog, cli.Contacts)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set SHELF_CATALOG and SHELF_CONTACTS to point at the snapshot files")
			return err
		}
		deps.Logger.Info("snapshots loaded",
			"catalog", cli.Catalog,
			"catalog_checksum", fmt.Sprintf("%016x", m.Snapshot.CatalogChecksum),
			"contacts", cli.Contacts,
			"directory_checksum", fmt.Sprintf("%016x", m.Snapshot.DirectoryChecksum),
		)
	}
	deps.Snapshot = m.Snapshot

	if m.Navigator == nil {
		m.Navigator = nav.NewNavigator(
			m.Snapshot.Catalog,
			m.Snapshot.Directory,
			shelfslog.NewLoggingRegistry[shelf.Catalog](inmem.NewRegistry[shelf.Catalog](), "catalog", deps.Logger),
			shelfslog.NewLoggingRegistry[shelf.Directory](inmem.NewRegistry[shelf.Directory](), "directory", deps.Logger),
			nav.WithPageSize(cli.PageSize),
		)
	}

	m.Registry.MustRegister(collectors.NewGoCollector())
	deps.Gatherer = m.Registry
	deps.Navigator = shelfslog.NewLoggingNavigator(
		shelfprom.NewMetricsNavigator(m.Navigator, m.Registry),
		deps.Logger,
	)

	return kongCtx.Run(deps)
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
