package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/shelf"
	main "github.com/fwojciec/shelf/cmd/shelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	catalogJSON = "../../testdata/catalog.json"
	emailsJSON  = "../../testdata/emails.json"
	catalogYAML = "../../testdata/catalog.yaml"
	emailsYAML  = "../../testdata/emails.yaml"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders catalog root from json snapshots", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "root")
		require.NoError(t, err)

		assert.Contains(t, out, "Appunti FreeCultureProject")
		assert.Contains(t, out, "[folder] 1 Intro  nav:")
		assert.Contains(t, out, "[folder] 2 Advanced  nav:")
		assert.Contains(t, out, "[file] Regolamento  https://drive.google.com/file/d/r0/view?usp=sharing")
		assert.Less(t, bytes.Index([]byte(out), []byte("1 Intro")), bytes.Index([]byte(out), []byte("2 Advanced")))
	})

	t.Run("renders catalog root from yaml snapshots", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogYAML, "--contacts", emailsYAML, "root", "--json")
		require.NoError(t, err)

		assert.Contains(t, out, `"title": "Appunti FreeCultureProject"`)
		assert.Contains(t, out, `"kind": "folder"`)
	})

	t.Run("searches files", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "search", "esami")
		require.NoError(t, err)

		assert.Contains(t, out, `Results for "esami" (page 1):`)
		assert.Contains(t, out, "2 Esami")
		assert.Contains(t, out, "10 Esami svolti")
		assert.Contains(t, out, "Esami Chimica")
	})

	t.Run("renders directory in snapshot order", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "directory")
		require.NoError(t, err)

		assert.Contains(t, out, "Contact directory")
		terzo := bytes.Index([]byte(out), []byte("Terzo anno"))
		primo := bytes.Index([]byte(out), []byte("Primo anno"))
		require.GreaterOrEqual(t, terzo, 0)
		assert.Less(t, terzo, primo)
	})

	t.Run("check prints statistics", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "check")
		require.NoError(t, err)

		assert.Contains(t, out, "4 folders, 5 files")
		assert.Contains(t, out, "2 years, 3 subjects, 4 contacts")
		assert.Contains(t, out, "xxhash ")
	})

	t.Run("logs snapshot checksums", func(t *testing.T) {
		t.Parallel()

		_, logs, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "--log-format", "json", "check")
		require.NoError(t, err)

		assert.Contains(t, logs, `"msg":"snapshots loaded"`)
		assert.Contains(t, logs, `"catalog_checksum"`)
	})

	t.Run("malformed action exits with error", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "action", "bogus")
		require.Error(t, err)
		assert.Equal(t, shelf.EMALFORMED, shelf.ErrorCode(err))
		assert.Contains(t, stderr, "error: ")
	})

	t.Run("tokens from a previous run are not found", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "action", "nav:deadbeef:0")
		require.Error(t, err)
		assert.Equal(t, shelf.ENOTFOUND, shelf.ErrorCode(err))
	})

	t.Run("fails when snapshot is missing", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--catalog", "missing.json", "--contacts", emailsJSON, "root")
		require.Error(t, err)
		assert.Contains(t, stderr, "SHELF_CATALOG")
	})

	t.Run("fails on unsupported snapshot format", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "--catalog", "catalog.xml", "--contacts", emailsJSON, "root")
		require.Error(t, err)
		assert.Equal(t, shelf.EINVALID, shelf.ErrorCode(err))
	})

	t.Run("fails on invalid snapshot", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		bad := filepath.Join(dir, "catalog.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"a": {}, "b": {}}`), 0o644))

		_, _, err := run(t, "--catalog", bad, "--contacts", emailsJSON, "root")
		require.Error(t, err)
		assert.Equal(t, shelf.EINVALID, shelf.ErrorCode(err))
	})

	t.Run("reads snapshot paths from config file", func(t *testing.T) {
		t.Parallel()

		catalog, err := filepath.Abs(catalogJSON)
		require.NoError(t, err)
		emails, err := filepath.Abs(emailsJSON)
		require.NoError(t, err)

		config := filepath.Join(t.TempDir(), "shelf.toml")
		content := "catalog = \"" + filepath.ToSlash(catalog) + "\"\ncontacts = \"" + filepath.ToSlash(emails) + "\"\n"
		require.NoError(t, os.WriteFile(config, []byte(content), 0o644))

		out, _, err := run(t, "--config", config, "check")
		require.NoError(t, err)
		assert.Contains(t, out, "4 folders, 5 files")
	})

	t.Run("action help explains which payloads resolve", func(t *testing.T) {
		t.Parallel()

		out, _, _ := run(t, "action", "--help")

		assert.Contains(t, out, "Usage: shelf action")
		assert.Contains(t, out, "mail:back")
	})

	t.Run("search payload resolves from the shell", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "action", "search:esami:0")
		require.NoError(t, err)
		assert.Contains(t, out, "Esami Chimica")
	})

	t.Run("directory back payload resolves from the shell", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t, "--catalog", catalogJSON, "--contacts", emailsJSON, "action", "mail:back")
		require.NoError(t, err)
		assert.Contains(t, out, "Contact directory")
	})

	t.Run("no command shows help and fails", func(t *testing.T) {
		t.Parallel()

		out, _, err := run(t)
		require.Error(t, err)
		assert.Contains(t, out, "Usage: shelf")
	})
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("json and yaml decode to the same trees", func(t *testing.T) {
		t.Parallel()

		fromJSON, err := main.LoadSnapshot(context.Background(), catalogJSON, emailsJSON)
		require.NoError(t, err)
		fromYAML, err := main.LoadSnapshot(context.Background(), catalogYAML, emailsYAML)
		require.NoError(t, err)

		assert.Equal(t, fromJSON.Catalog.Stats(), fromYAML.Catalog.Stats())
		assert.Equal(t, fromJSON.Directory.Stats(), fromYAML.Directory.Stats())
		assert.NotEqual(t, fromJSON.CatalogChecksum, fromYAML.CatalogChecksum)
	})

	t.Run("checksum is stable", func(t *testing.T) {
		t.Parallel()

		a, err := main.LoadSnapshot(context.Background(), catalogJSON, emailsJSON)
		require.NoError(t, err)
		b, err := main.LoadSnapshot(context.Background(), catalogJSON, emailsJSON)
		require.NoError(t, err)

		assert.Equal(t, a.CatalogChecksum, b.CatalogChecksum)
		assert.Equal(t, a.DirectoryChecksum, b.DirectoryChecksum)
	})

	t.Run("fails when directory is missing", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadSnapshot(context.Background(), catalogJSON, "missing.yaml")
		require.Error(t, err)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := main.LoadSnapshot(ctx, catalogJSON, emailsJSON)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecoderFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.json", "a.JSON", "a.yaml", "a.yml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dec, err := main.DecoderFor(name)
			require.NoError(t, err)
			assert.NotNil(t, dec)
		})
	}

	t.Run("rejects unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := main.DecoderFor("a.csv")
		require.Error(t, err)
		assert.Equal(t, shelf.EINVALID, shelf.ErrorCode(err))
	})
}
