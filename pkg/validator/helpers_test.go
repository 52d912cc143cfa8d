package validator_test

import (
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// testField is a minimal validator.Field that echoes source messages.
type testField struct {
	name   string
	label  string
	raw    []string
	data   any
	errors []string
}

func newTestField(raw ...string) *testField {
	f := &testField{name: "field", label: "Field", raw: raw}
	if len(raw) > 0 {
		f.data = raw[0]
	}
	return f
}

func (f *testField) Name() string        { return f.name }
func (f *testField) Label() string       { return f.label }
func (f *testField) RawData() []string   { return f.raw }
func (f *testField) Data() any           { return f.data }
func (f *testField) Errors() []string    { return f.errors }
func (f *testField) AddError(msg string) { f.errors = append(f.errors, msg) }
func (f *testField) ClearErrors()        { f.errors = nil }

func (f *testField) Gettext(_ string, message string, args ...string) string {
	return i18n.Format(message, args...)
}

func (f *testField) Ngettext(_ string, singular, plural string, n int, args ...string) string {
	if n == 1 {
		return i18n.Format(singular, args...)
	}
	return i18n.Format(plural, args...)
}

// testForm is a validator.Form over a fixed set of fields.
type testForm map[string]*testField

func (f testForm) Field(name string) (validator.Field, bool) {
	field, ok := f[name]
	if !ok {
		return nil, false
	}
	return field, true
}
