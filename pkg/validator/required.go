package validator

import "unicode"

// The required-ness rules compose these predicates in order; each one
// assumes the previous ones hold.

func fieldPresent(field Field) bool {
	return len(field.RawData()) > 0
}

func inputPresent(field Field) bool {
	return field.RawData()[0] != ""
}

func dataPresent(field Field) bool {
	return !isBlank(field.RawData()[0])
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FieldRequired checks that the field was part of the submission, even if empty.
//
// In "title=My%20Post&description=" both title and description exist and pass.
// It does not set the "required" flag; that belongs to InputRequired.
type FieldRequired struct {
	base
}

// NewFieldRequired creates a FieldRequired validator.
func NewFieldRequired(opts ...Option) *FieldRequired {
	return &FieldRequired{base: newBase(opts, nil)}
}

// Validate stops with "This field must exist." when the field was not submitted.
func (v *FieldRequired) Validate(_ Form, field Field) Result {
	if !fieldPresent(field) {
		return v.fail(field, msgFieldExists)
	}
	return Continue
}

// InputRequired checks that non-empty input was submitted for the field.
// It looks at what was sent, not at the coerced data, so initially populated
// data does not count. On an empty submission earlier errors are discarded
// and only the required error remains.
//
// Sets the "required" flag.
type InputRequired struct {
	base
}

// NewInputRequired creates an InputRequired validator.
func NewInputRequired(opts ...Option) *InputRequired {
	return &InputRequired{base: newBase(opts, Flags{"required": true})}
}

// Validate stops when the field is missing or its first submitted token is empty.
func (v *InputRequired) Validate(_ Form, field Field) Result {
	if !fieldPresent(field) {
		return v.fail(field, msgFieldExists)
	}
	if !inputPresent(field) {
		field.ClearErrors()
		return v.fail(field, msgRequired)
	}
	return Continue
}

// DataRequired checks that the submitted input carries more than whitespace.
// Only string input is supported.
//
// Sets the "required" flag.
type DataRequired struct {
	base
}

// NewDataRequired creates a DataRequired validator.
func NewDataRequired(opts ...Option) *DataRequired {
	return &DataRequired{base: newBase(opts, Flags{"required": true})}
}

// Validate stops when the field is missing, empty, or whitespace only.
func (v *DataRequired) Validate(_ Form, field Field) Result {
	if !fieldPresent(field) {
		return v.fail(field, msgFieldExists)
	}
	if !inputPresent(field) {
		field.ClearErrors()
		return v.fail(field, msgRequired)
	}
	if !dataPresent(field) {
		field.ClearErrors()
		return v.fail(field, msgRequiredData)
	}
	return Continue
}

// InputOptional allows empty input and stops the chain silently when there is none.
// Whitespace-only input counts as empty unless WithWhitespaceAsInput is given.
// Earlier errors are discarded when the chain is stopped.
//
// Sets the "optional" flag.
type InputOptional struct {
	base
}

// NewInputOptional creates an InputOptional validator. See WithWhitespaceAsInput.
func NewInputOptional(opts ...Option) *InputOptional {
	return &InputOptional{base: newBase(opts, Flags{"optional": true})}
}

// Validate clears the field errors and stops silently when there is no input.
func (v *InputOptional) Validate(_ Form, field Field) Result {
	if fieldPresent(field) && inputPresent(field) && (v.opts.keepWhitespace || dataPresent(field)) {
		return Continue
	}
	field.ClearErrors()
	return Stop()
}
