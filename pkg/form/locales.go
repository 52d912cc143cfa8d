package form

import (
	"context"
	"embed"
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultTranslator returns a translator loaded with the built-in validation
// messages (en, de, fr). Extra catalogs can be layered on top with Translator.Merge.
func DefaultTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), localesFS, "locales")
	tr, err := i18n.NewTranslator(ctx, adapter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadLocales, err)
	}
	return tr, nil
}
