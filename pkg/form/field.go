package form

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Filter transforms the coerced value of a field after processing.
// Filters never touch the raw data, so validators looking at raw input see
// exactly what was submitted.
type Filter func(string) string

// Field is a string-typed form field. It implements validator.Field.
type Field struct {
	name         string
	label        string
	defaultValue string
	filters      []Filter
	validators   []validator.Validator

	raw    []string
	data   string
	errors []string

	// pending holds errors added outside a validation run, such as process
	// errors. Each Validate starts from them.
	pending    []string
	validating bool

	translator *i18n.Translator
	lang       string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithLabel sets the human-readable label. Defaults to the title-cased name.
func WithLabel(label string) FieldOption {
	return func(f *Field) {
		if label != "" {
			f.label = label
		}
	}
}

// WithValidators appends validators to the field's chain, in order.
func WithValidators(validators ...validator.Validator) FieldOption {
	return func(f *Field) {
		for _, v := range validators {
			if v != nil {
				f.validators = append(f.validators, v)
			}
		}
	}
}

// WithFilters appends filters applied to the coerced value, in order.
func WithFilters(filters ...Filter) FieldOption {
	return func(f *Field) {
		for _, fn := range filters {
			if fn != nil {
				f.filters = append(f.filters, fn)
			}
		}
	}
}

// WithDefault sets the data used when the field is absent from the submission.
// The default never counts as submitted input.
func WithDefault(value string) FieldOption {
	return func(f *Field) {
		f.defaultValue = value
		f.data = value
	}
}

// NewField creates a field named after its submission key.
func NewField(name string, opts ...FieldOption) *Field {
	f := &Field{
		name:  name,
		label: labelFromName(name),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// labelFromName turns "first_name" into "First Name".
// Casers keep state, so one is created per call.
func labelFromName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func (f *Field) Name() string  { return f.name }
func (f *Field) Label() string { return f.label }

// RawData returns the submitted tokens. Empty when the field was not submitted.
func (f *Field) RawData() []string { return f.raw }

// Data returns the coerced value as any, for validators.
func (f *Field) Data() any { return f.data }

// Value returns the coerced value.
func (f *Field) Value() string { return f.data }

// Errors returns a copy of the recorded errors.
func (f *Field) Errors() []string { return slices.Clone(f.errors) }

// AddError records msg. Outside Validate the message survives later validation runs.
func (f *Field) AddError(msg string) {
	f.errors = append(f.errors, msg)
	if !f.validating {
		f.pending = append(f.pending, msg)
	}
}

// ClearErrors drops the recorded errors. Called by a validator it only
// affects the current run.
func (f *Field) ClearErrors() {
	f.errors = nil
	if !f.validating {
		f.pending = nil
	}
}

// Validators returns the field's chain.
func (f *Field) Validators() []validator.Validator {
	return slices.Clone(f.validators)
}

// Flags merges the flags of every validator in the chain. Later validators win.
func (f *Field) Flags() validator.Flags {
	flags := validator.Flags{}
	for _, v := range f.validators {
		for k, val := range v.FieldFlags() {
			flags[k] = val
		}
	}
	return flags
}

// Process loads the field from submitted values and resets its errors.
// The first submitted token, passed through the filters, becomes the data;
// the default is used when the field is absent.
func (f *Field) Process(values url.Values) {
	f.errors = nil
	f.pending = nil
	f.raw = slices.Clone(values[f.name])

	value := f.defaultValue
	if len(f.raw) > 0 {
		value = f.raw[0]
	}

	filters := make([]func(string) string, len(f.filters))
	for i, fn := range f.filters {
		filters[i] = fn
	}
	f.data = sanitizer.Apply(value, filters...)
}

// Validate runs the field's chain against form and reports whether the field has no errors.
// Errors recorded before validation are kept unless a validator clears them.
// Validating again starts over from those errors, so messages never pile up.
func (f *Field) Validate(form validator.Form) bool {
	f.errors = slices.Clone(f.pending)
	f.validating = true
	defer func() { f.validating = false }()

	validator.Run(form, f, f.validators...)
	return len(f.errors) == 0
}

// bind sets the translator and language used for error messages.
func (f *Field) bind(tr *i18n.Translator, lang string) {
	f.translator = tr
	f.lang = lang
}

// Gettext translates key into the bound language, falling back to message.
func (f *Field) Gettext(key, message string, args ...string) string {
	if f.translator == nil {
		return i18n.Format(message, args...)
	}
	return f.translator.Td(f.lang, key, message, args...)
}

// Ngettext is the plural counterpart of Gettext.
func (f *Field) Ngettext(key, singular, plural string, n int, args ...string) string {
	if f.translator == nil {
		msg := plural
		if n == 1 {
			msg = singular
		}
		return i18n.Format(msg, append(slices.Clone(args), "count", strconv.Itoa(n))...)
	}
	return f.translator.Nd(f.lang, key, singular, plural, n, args...)
}
