// Package i18n translates validation messages for forms.
//
// It is a small key-based translator with gettext-style helpers: every
// lookup carries the source (English) message so a missing translation still
// produces a readable string, and plural lookups pick the ".zero", ".one" or
// ".other" form of a key from the count.
//
// # Architecture
//
// The Translator delegates storage to a TranslationAdapter. MapAdapter keeps
// translations in memory, FileAdapter reads a single file and FSAdapter reads
// a directory from any fs.FS (embed.FS for bundled locales, os.DirFS for
// overrides on disk). Parsers for YAML and JSON are included.
//
// Translation files are keyed by language at the top level:
//
//	en:
//	  validation:
//	    required: "This field is required."
//	    length:
//	      min:
//	        one: "Field must be at least %{min} character long."
//	        other: "Field must be at least %{min} characters long."
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	msg := translator.Td("de", "validation.required", "This field is required.")
//	msg = translator.Nd("de", "validation.length.min", "at least %{min} character", "at least %{min} characters", 3, "min", "3")
//
// Placeholders use the "%{name}" syntax and are filled from key-value
// argument pairs; Format exposes the same substitution for messages that do
// not come from a translator.
//
// MatchLanguage resolves a user preference (a tag, a POSIX locale or an
// Accept-Language list) against the supported languages with
// golang.org/x/text/language.
package i18n
