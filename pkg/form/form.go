package form

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form is an ordered set of fields validated together.
// A Form is not safe for concurrent use; build one per submission.
type Form struct {
	name       string
	fields     []*Field
	index      map[string]*Field
	translator *i18n.Translator
	lang       string
	logger     *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithName sets the form name used in log records.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}

// WithFields appends fields in the order they are validated.
func WithFields(fields ...*Field) Option {
	return func(f *Form) {
		for _, field := range fields {
			if field != nil {
				f.fields = append(f.fields, field)
			}
		}
	}
}

// WithTranslator sets the translator for error messages.
// Without one, fields produce the English defaults.
func WithTranslator(tr *i18n.Translator) Option {
	return func(f *Form) {
		f.translator = tr
	}
}

// WithLanguage sets the language used when the validation context carries none.
func WithLanguage(lang string) Option {
	return func(f *Form) {
		f.lang = lang
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a form. It fails when two fields share a name.
func New(opts ...Option) (*Form, error) {
	f := &Form{
		name:   "form",
		index:  make(map[string]*Field),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, field := range f.fields {
		if field.Name() == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := f.index[field.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, field.Name())
		}
		f.index[field.Name()] = field
	}

	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Form {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Field looks up a field by name. It lets validators such as EqualTo reach sibling fields.
func (f *Form) Field(name string) (validator.Field, bool) {
	field, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return field, true
}

// Get returns the concrete field, or nil when the form has no such field.
func (f *Form) Get(name string) *Field {
	return f.index[name]
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field {
	out := make([]*Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Process loads every field from the submission.
func (f *Form) Process(values url.Values) {
	for _, field := range f.fields {
		field.Process(values)
	}
}

// Validate runs every field's chain and reports whether the form is valid.
// The language comes from the context (see i18n.SetLocale), then from WithLanguage,
// then from the translator's default. Every field is validated even after a failure.
func (f *Form) Validate(ctx context.Context) bool {
	lang := f.Language(ctx)

	valid := true
	for _, field := range f.fields {
		field.bind(f.translator, lang)
		if !field.Validate(f) {
			valid = false
			f.logger.DebugContext(ctx, "field validation failed",
				logger.Form(f.name),
				logger.Field(field.Name()),
				logger.Lang(lang),
				logger.Messages(field.Errors()),
			)
		}
	}

	f.logger.DebugContext(ctx, "form validated",
		logger.Form(f.name),
		logger.Lang(lang),
		slog.Bool("valid", valid),
	)
	return valid
}

// Language resolves the message language for ctx against what the translator supports.
func (f *Form) Language(ctx context.Context) string {
	preference, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		preference = f.lang
	}

	if f.translator == nil {
		if preference == "" {
			return i18n.DefaultLanguage
		}
		return preference
	}

	fallback := f.translator.DefaultLanguage()
	if preference == "" {
		return fallback
	}
	return i18n.MatchLanguage(preference, f.translator.SupportedLanguages(), fallback)
}

// Errors collects the errors of all fields in field order.
func (f *Form) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, field := range f.fields {
		for _, msg := range field.Errors() {
			errs.Add(validator.ValidationError{
				Field:   field.Name(),
				Label:   field.Label(),
				Message: msg,
			})
		}
	}
	return errs
}

// Err returns the form errors as an error, or nil when there are none.
// The result matches validator.ErrValidationFailed with errors.Is.
func (f *Form) Err() error {
	errs := f.Errors()
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Data returns the coerced value of every field keyed by name.
func (f *Form) Data() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.Name()] = field.Value()
	}
	return out
}

// Flags returns the merged flags of every field keyed by name.
func (f *Form) Flags() map[string]validator.Flags {
	out := make(map[string]validator.Flags, len(f.fields))
	for _, field := range f.fields {
		out[field.Name()] = field.Flags()
	}
	return out
}
