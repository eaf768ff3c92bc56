package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shelf"
	"github.com/fwojciec/shelf/json"
	"github.com/fwojciec/shelf/yaml"
	"golang.org/x/sync/errgroup"
)

// Snapshot holds both trees loaded at startup with checksums of the files
// they were decoded from.
type Snapshot struct {
	Catalog           *shelf.Catalog
	Directory         *shelf.Directory
	CatalogChecksum   uint64
	DirectoryChecksum uint64
}

// LoadSnapshot reads and decodes the catalog and directory files
// concurrently. Either failing aborts the load.
func LoadSnapshot(ctx context.Context, catalogPath, directoryPath string) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dec, err := DecoderFor(catalogPath)
		if err != nil {
			return err
		}
		data, err := readFile(ctx, catalogPath)
		if err != nil {
			return err
		}
		if snap.Catalog, err = dec.DecodeCatalog(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("decode catalog %s: %w", catalogPath, err)
		}
		snap.CatalogChecksum = xxhash.Sum64(data)
		return nil
	})

	g.Go(func() error {
		dec, err := DecoderFor(directoryPath)
		if err != nil {
			return err
		}
		data, err := readFile(ctx, directoryPath)
		if err != nil {
			return err
		}
		if snap.Directory, err = dec.DecodeDirectory(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("decode directory %s: %w", directoryPath, err)
		}
		snap.DirectoryChecksum = xxhash.Sum64(data)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// DecoderFor picks a snapshot decoder by file extension.
func DecoderFor(path string) (shelf.SnapshotDecoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.NewDecoder(), nil
	case ".yaml", ".yml":
		return yaml.NewDecoder(), nil
	}
	return nil, shelf.Errorf(shelf.EINVALID, "unsupported snapshot format %q", filepath.Ext(path))
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}
