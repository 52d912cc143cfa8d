package validator

import (
	"maps"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

// Field is the part of a form field a validator may inspect or modify.
type Field interface {
	Name() string
	Label() string
	// RawData holds the submitted tokens in order. An empty slice means the
	// field was not part of the submission at all.
	RawData() []string
	// Data is the coerced value.
	Data() any
	Errors() []string
	AddError(msg string)
	ClearErrors()
	// Gettext translates key, falling back to message.
	Gettext(key, message string, args ...string) string
	// Ngettext translates key for count n, falling back to singular or plural.
	Ngettext(key, singular, plural string, n int, args ...string) string
}

// Form gives validators access to sibling fields.
type Form interface {
	Field(name string) (Field, bool)
}

// Validator is a single rule in a field's validation chain.
type Validator interface {
	Validate(form Form, field Field) Result
	// FieldFlags returns presentation hints for the rendering layer.
	FieldFlags() Flags
}

// Func adapts a plain function to the Validator interface. It sets no flags.
type Func func(form Form, field Field) Result

func (f Func) Validate(form Form, field Field) Result { return f(form, field) }

func (f Func) FieldFlags() Flags { return nil }

// Flags are presentation hints such as "required" or "maxlength".
type Flags map[string]any

// Clone returns a copy safe to modify.
func (f Flags) Clone() Flags {
	if f == nil {
		return Flags{}
	}
	return maps.Clone(f)
}

// Has reports whether the flag is set to a value other than false.
func (f Flags) Has(name string) bool {
	v, ok := f[name]
	if !ok {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// Result is the outcome of a single validator. The zero value continues the chain.
type Result struct {
	stop       bool
	message    string
	hasMessage bool
}

// Continue lets the chain proceed to the next validator.
var Continue = Result{}

// Stop halts the chain without recording an error.
func Stop() Result {
	return Result{stop: true}
}

// StopWithMessage halts the chain and records msg on the field.
func StopWithMessage(msg string) Result {
	return Result{stop: true, message: msg, hasMessage: true}
}

// Stopped reports whether the chain must halt.
func (r Result) Stopped() bool { return r.stop }

// Message returns the error to record, if any.
func (r Result) Message() (string, bool) { return r.message, r.hasMessage }

// Run executes validators in order and halts at the first one that stops the chain,
// appending its message to the field. It reports whether the chain was stopped.
func Run(form Form, field Field, validators ...Validator) bool {
	for _, v := range validators {
		if v == nil {
			continue
		}
		res := v.Validate(form, field)
		if !res.Stopped() {
			continue
		}
		if msg, ok := res.Message(); ok {
			field.AddError(msg)
		}
		return true
	}
	return false
}

// Option configures a validator.
type Option func(*options)

type options struct {
	message        string
	keepWhitespace bool
}

// WithMessage overrides every error message the validator produces.
// Placeholders such as %{min} are still substituted. An empty message keeps the defaults.
func WithMessage(msg string) Option {
	return func(o *options) {
		o.message = msg
	}
}

// WithWhitespaceAsInput makes InputOptional treat whitespace-only input as provided.
func WithWhitespaceAsInput() Option {
	return func(o *options) {
		o.keepWhitespace = true
	}
}

// base carries what every validator shares: the message override and immutable flags.
type base struct {
	opts  options
	flags Flags
}

func newBase(opts []Option, flags Flags) base {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return base{opts: o, flags: flags}
}

// FieldFlags returns a copy of the validator's flags.
func (b base) FieldFlags() Flags {
	return b.flags.Clone()
}

// Validate is a no-op; concrete validators shadow it.
func (b base) Validate(Form, Field) Result {
	return Continue
}

// fail stops the chain with the override message when configured, otherwise
// with the translated default.
func (b base) fail(field Field, m message, args ...string) Result {
	if b.opts.message != "" {
		return StopWithMessage(i18n.Format(b.opts.message, args...))
	}
	return StopWithMessage(m.translate(field, args...))
}
