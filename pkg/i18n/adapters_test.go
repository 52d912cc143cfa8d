package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Run("nil data yields empty map", func(t *testing.T) {
		got, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFileAdapter(t *testing.T) {
	t.Run("returns nil for invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFileAdapter(nil, "en.yaml"))
		assert.Nil(t, i18n.NewFileAdapter(i18n.NewYAMLParser(), ""))
	})

	t.Run("loads translations from YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "en.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  validation:\n    required: Required!\n"), 0o600))

		got, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, got, "en")

		validation, ok := got["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Required!", validation["required"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("parser failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := i18n.NewFileAdapter(i18n.NewJSONParser(), path).Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "en.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  a: b\n"), 0o600))

		_, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(ctx)
		if err != nil {
			// The read may finish before cancellation is observed.
			assert.ErrorIs(t, err, context.Canceled)
		}
	})
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":  {Data: []byte("en:\n  validation:\n    required: This field is required.\n")},
		"locales/de.yml":   {Data: []byte("de:\n  validation:\n    required: Pflichtfeld.\n")},
		"locales/fr.json":  {Data: []byte(`{"fr": {"validation": {"required": "Obligatoire."}}}`)},
		"locales/README":   {Data: []byte("ignored")},
		"locales/sub/x.md": {Data: []byte("ignored")},
		"empty/notes.txt":  {Data: []byte("nothing")},
	}

	t.Run("returns nil for invalid arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
		assert.Nil(t, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), ""))
	})

	t.Run("loads only supported extensions", func(t *testing.T) {
		got, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Contains(t, got, "en")
		assert.Contains(t, got, "de")
	})

	t.Run("json parser picks json files", func(t *testing.T) {
		got, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, "fr")
	})

	t.Run("no matching files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "empty").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingDirectoryCancelled)
	})

	t.Run("merges files for the same language", func(t *testing.T) {
		split := fstest.MapFS{
			"a.yaml": {Data: []byte("en:\n  validation:\n    required: R\n")},
			"b.yaml": {Data: []byte("en:\n  validation:\n    exists: E\n")},
		}
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), split, ""))
		require.NoError(t, err)
		assert.Equal(t, "R", tr.T("en", "validation.required"))
		assert.Equal(t, "E", tr.T("en", "validation.exists"))
	})

	t.Run("directory on disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte("de:\n  hello: Hallo\n"), 0o600))

		tr, err := i18n.NewTranslator(context.Background(), i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir))
		require.NoError(t, err)
		assert.Equal(t, "Hallo", tr.T("de", "hello"))
	})
}
