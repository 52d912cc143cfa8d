// Package validator implements field-level validation chains for web forms.
//
// A field owns an ordered list of Validator values. Each validator inspects
// the field's raw submitted tokens and/or its coerced data and returns a
// Result: either Continue, or a stop that halts the rest of the chain. A stop
// may carry a message, which is recorded as a field error, or be silent (see
// InputOptional).
//
// # Rules
//
//   - FieldRequired: the field was submitted at all (an empty value counts).
//   - InputRequired: the first submitted token is non-empty.
//   - DataRequired: the first submitted token is not whitespace only.
//   - InputOptional: stops the chain silently on empty input.
//   - Length: character count of the first token within [min, max].
//   - EqualTo: data equals the data of another form field.
//
// InputRequired and DataRequired discard errors recorded earlier on the field
// before reporting, so a required-but-empty field shows only the required
// error.
//
// # Flags
//
// Validators expose presentation hints through FieldFlags, for example
// {"required": true} or {"minlength": 2, "maxlength": 5}. Flags are fixed at
// construction.
//
// # Messages
//
// Default messages are English and go through the field's Gettext/Ngettext
// with the translation keys declared in this package (KeyRequired, ...).
// WithMessage replaces them; "%{min}", "%{max}" and "%{length}" placeholders
// are substituted in both.
//
// # Usage
//
//	username := form.NewField("username", form.WithValidators(
//	    validator.NewDataRequired(),
//	    validator.MustLength(3, 20),
//	))
//
// Misconfiguration is reported at construction: NewLength returns
// ErrInvalidLengthBounds, MustLength panics.
package validator
