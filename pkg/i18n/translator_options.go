package i18n

import (
	"log/slog"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language reported by DefaultLanguage, which
// forms use when neither the context nor the form names one.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T and N return the key for missing
// translations (the default) or an empty string. Td and Nd always fall back
// to the message they are given.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. Output is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every lookup that misses.
// Off by default.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// WithNoLogging discards all output and turns off missing translation warnings.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.DiscardHandler)
		t.missingLogMode = false
	}
}
