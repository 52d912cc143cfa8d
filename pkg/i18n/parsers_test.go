package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("parses nested plural forms", func(t *testing.T) {
		content := `
en:
  validation:
    length:
      min:
        one: "at least %{min} character"
        other: "at least %{min} characters"
`
		got, err := p.Parse(context.Background(), content)
		require.NoError(t, err)

		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: got})
		require.NoError(t, err)
		assert.Equal(t, "at least 2 characters", tr.N("en", "validation.length.min", 2, "min", "2"))
	})

	t.Run("rejects scalar language entry", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello\n")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: [unclosed\n")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "# nothing here\n")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en:\n  a: b\n")
		require.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("file extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yaml"))
		assert.True(t, p.SupportsFileExtension(".YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := i18n.NewJSONParser()

	t.Run("parses languages", func(t *testing.T) {
		got, err := p.Parse(context.Background(), `{"en": {"hello": "Hello"}, "de": {"hello": "Hallo"}}`)
		require.NoError(t, err)
		assert.Equal(t, "Hallo", got["de"]["hello"])
	})

	t.Run("rejects non map language", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"en": "Hello"}`)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := p.Parse(context.Background(), `{"en":`)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, `{}`)
		require.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
	})

	t.Run("file extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".json"))
		assert.False(t, p.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("locales/en.yml"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("de.JSON"))
	assert.Nil(t, i18n.NewParserForFile("notes.txt"))
}
