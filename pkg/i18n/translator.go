package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Translator resolves message keys into localized strings.
// Translations are loaded from a TranslationAdapter and may be extended with Merge;
// lookups are safe for concurrent use, so one Translator can serve every form.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.DiscardHandler),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a sorted list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a caller does not specify one.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Merge adds translations on top of the loaded ones. Keys present in both are overwritten.
func (t *Translator) Merge(ctx context.Context, adapter TranslationAdapter) error {
	if adapter == nil {
		return ErrNilAdapter
	}

	extra, err := adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(extra); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.translations == nil {
		t.translations = make(map[string]map[string]any, len(extra))
	}
	for lang, msgs := range extra {
		if t.translations[lang] == nil {
			t.translations[lang] = make(map[string]any, len(msgs))
		}
		mergeNested(t.translations[lang], msgs)
	}
	return nil
}

func mergeNested(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		dstMap, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			mergeNested(dstMap, srcMap)
			dst[k] = dstMap
			continue
		}
		dst[k] = v
	}
}

// asStringMap normalizes map[any]any produced by some YAML decoders.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.length.max.one" walks m["validation"]["length"]["max"]["one"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := asStringMap(next)
		if !ok {
			return nil, false
		}
		current = currentMap
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = t.getTranslation(langMap, key)
	return ok
}

// pluralValue picks the plural form of key for n following the plural rules of lang.
// n=0 prefers ".zero"; otherwise the CLDR category (".one", ".few", ...) is tried,
// then ".other", then the bare key.
func (t *Translator) pluralValue(langMap map[string]any, lang, key string, n int) (any, bool) {
	if n == 0 {
		if val, ok := t.getTranslation(langMap, key+".zero"); ok {
			return val, true
		}
	}
	if category := pluralCategory(lang, n); category != "other" {
		if val, ok := t.getTranslation(langMap, key+"."+category); ok {
			return val, true
		}
	}
	if val, ok := t.getTranslation(langMap, key+".other"); ok {
		return val, true
	}
	return t.getTranslation(langMap, key)
}

// T translates a key for the given language.
// Arguments are key-value pairs substituted into "%{key}" placeholders:
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John")
//	// Returns: "Hello, John!"
//
// If the translation is missing and fallback to key is enabled, the key itself is returned.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("Language not supported", lang, key)
		if t.fallbackToKey {
			return Format(key, args...)
		}
		return ""
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		t.logMissing("Translation not found", lang, key)
		if t.fallbackToKey {
			return Format(key, args...)
		}
		return ""
	}

	if s, ok := stringValue(val); ok {
		return Format(s, args...)
	}

	t.logMissing("Translation is not a string", lang, key)
	if t.fallbackToKey {
		return Format(key, args...)
	}
	return ""
}

// N translates a key with pluralization for the given language.
// The count is always available to the template as "%{count}".
//
//	// "items.one": "%{count} item", "items.other": "%{count} items"
//	translator.N("en", "items", 5) // "5 items"
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("Language not supported", lang, key)
		if t.fallbackToKey {
			return Format(key, withCount(args, n)...)
		}
		return ""
	}

	val, found := t.pluralValue(langMap, lang, key, n)
	if s, ok := stringValue(val); found && ok {
		return Format(s, withCount(args, n)...)
	}

	t.logMissing("Pluralization not found", lang, key)
	if t.fallbackToKey {
		return Format(key, withCount(args, n)...)
	}
	return ""
}

// Td translates a key with an explicit default used when the translation is missing.
// This is the gettext flavour used by form validators: the default is the source message.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("Language not supported", lang, key)
		return Format(defaultValue, args...)
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		t.logMissing("Translation not found", lang, key)
		return Format(defaultValue, args...)
	}

	s, ok := stringValue(val)
	if !ok {
		t.logMissing("Translation is not a string", lang, key)
		return Format(defaultValue, args...)
	}

	return Format(s, args...)
}

// Nd is the plural counterpart of Td (ngettext). When no translation exists,
// singular is used when n takes the "one" form in lang and plural otherwise.
func (t *Translator) Nd(lang, key, singular, plural string, n int, args ...string) string {
	fallback := plural
	if pluralCategory(lang, n) == "one" {
		fallback = singular
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.logMissing("Language not supported", lang, key)
		return Format(fallback, withCount(args, n)...)
	}

	val, found := t.pluralValue(langMap, lang, key, n)
	s, ok := stringValue(val)
	if !found || !ok {
		t.logMissing("Pluralization not found", lang, key)
		return Format(fallback, withCount(args, n)...)
	}

	return Format(s, withCount(args, n)...)
}

// Tc translates a key using the language stored in the context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Nc translates a plural key using the language stored in the context.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(GetLocale(ctx), key, n, args...)
}

func (t *Translator) logMissing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, "lang", lang, "key", key)
	}
}

func stringValue(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func withCount(args []string, n int) []string {
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == "count" {
			return args
		}
	}
	out := make([]string, len(args), len(args)+2)
	copy(out, args)
	return append(out, "count", strconv.Itoa(n))
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes "%{name}" placeholders in tmpl using key-value pairs.
// Unknown placeholders are kept as is; a trailing unpaired argument is ignored.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
