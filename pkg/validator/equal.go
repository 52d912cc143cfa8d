package validator

import "reflect"

// EqualTo compares the field's data with the data of another field of the form.
// Typical use is a password confirmation field.
type EqualTo struct {
	base
	other string
}

// NewEqualTo creates a validator comparing against the field named fieldName.
func NewEqualTo(fieldName string, opts ...Option) *EqualTo {
	return &EqualTo{base: newBase(opts, nil), other: fieldName}
}

// Validate stops when the other field is unknown or holds different data.
func (v *EqualTo) Validate(form Form, field Field) Result {
	var (
		other Field
		ok    bool
	)
	if form != nil {
		other, ok = form.Field(v.other)
	}
	if !ok {
		return v.fail(field, msgEqualToMissing, "other_name", v.other)
	}

	if reflect.DeepEqual(field.Data(), other.Data()) {
		return Continue
	}

	return v.fail(field, msgEqualTo,
		"other_name", v.other,
		"other_label", other.Label(),
	)
}
