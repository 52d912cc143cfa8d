package i18n

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the preference list we are willing to parse.
const maxAcceptLanguageLength = 4096

// MatchLanguage picks the best supported language for the given preference.
// The preference may be a single tag ("de-AT"), a POSIX locale ("fr_FR.UTF-8")
// or an Accept-Language style list ("de-CH, fr;q=0.8").
// Exact tags win, then base languages (de-AT -> de); defaultLang is returned
// when nothing matches.
func MatchLanguage(preference string, supportedLangs []string, defaultLang string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(preference) > maxAcceptLanguageLength {
		preference = preference[:maxAcceptLanguageLength]
	}

	// POSIX locales: strip encoding/modifier and use BCP 47 separators.
	if i := strings.IndexAny(preference, ".@"); i > 0 && !strings.ContainsAny(preference, ",;") {
		preference = preference[:i]
	}
	preference = strings.ReplaceAll(preference, "_", "-")

	desired, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	supported := make([]language.Tag, 0, len(supportedLangs))
	names := make([]string, 0, len(supportedLangs))
	for _, lang := range supportedLangs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, lang)
	}
	if len(supported) == 0 {
		return defaultLang
	}

	// Exact tags first, respecting preference order.
	for _, want := range desired {
		for i, have := range supported {
			if want == have {
				return names[i]
			}
		}
	}

	// Base language fallback.
	for _, want := range desired {
		wantBase, _ := want.Base()
		for i, have := range supported {
			haveBase, _ := have.Base()
			if wantBase == haveBase {
				return names[i]
			}
		}
	}

	return defaultLang
}

// ParseAcceptLanguage is MatchLanguage for Accept-Language header values.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	return MatchLanguage(header, supportedLangs, defaultLang)
}

// pluralCategory returns the CLDR cardinal category of n in lang, as used for
// plural keys: "zero", "one", "two", "few", "many" or "other".
// Unparseable languages follow English rules.
func pluralCategory(lang string, n int) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	if n < 0 {
		n = -n
	}

	switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}
