package form

import "errors"

var (
	ErrDuplicateField = errors.New("form: duplicate field name")
	ErrEmptyFieldName = errors.New("form: field name cannot be empty")
	ErrLoadLocales    = errors.New("form: failed to load default locales")
)
