package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Validator records the validator type under the key "validator",
// for example logger.Validator(fmt.Sprintf("%T", v)).
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Lang records the message language under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Locale records the requested locale, such as an Accept-Language value,
// under the key "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Messages records field error messages under the key "messages".
// An empty list yields an empty Attr.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("messages", msgs)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
