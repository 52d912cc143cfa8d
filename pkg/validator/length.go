package validator

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Unset disables a Length bound.
const Unset = -1

// Length checks that the number of characters of the submitted input lies in
// the inclusive range [min, max]. Absent input has length -1 and therefore
// fails any min of zero or more.
//
// Sets the "minlength" and "maxlength" flags for the bounds in use.
type Length struct {
	base
	min int
	max int
}

// NewLength returns ErrInvalidLengthBounds when both bounds are Unset,
// when a bound is negative, or when min exceeds max.
func NewLength(min, max int, opts ...Option) (*Length, error) {
	if min == Unset && max == Unset {
		return nil, fmt.Errorf("%w: at least one of min or max must be specified", ErrInvalidLengthBounds)
	}
	if min < Unset || max < Unset {
		return nil, fmt.Errorf("%w: bounds must be non-negative or Unset, got min=%d max=%d", ErrInvalidLengthBounds, min, max)
	}
	if max != Unset && min > max {
		return nil, fmt.Errorf("%w: min (%d) cannot be greater than max (%d)", ErrInvalidLengthBounds, min, max)
	}

	flags := Flags{}
	if min != Unset {
		flags["minlength"] = min
	}
	if max != Unset {
		flags["maxlength"] = max
	}

	return &Length{base: newBase(opts, flags), min: min, max: max}, nil
}

// MustLength is like NewLength but panics on misconfiguration.
func MustLength(min, max int, opts ...Option) *Length {
	v, err := NewLength(min, max, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Min returns the lower bound, or Unset.
func (v *Length) Min() int { return v.min }

// Max returns the upper bound, or Unset.
func (v *Length) Max() int { return v.max }

// Validate counts the characters of the first submitted token.
func (v *Length) Validate(_ Form, field Field) Result {
	length := -1
	if fieldPresent(field) {
		length = utf8.RuneCountInString(field.RawData()[0])
	}

	if length >= v.min && (v.max == Unset || length <= v.max) {
		return Continue
	}

	args := []string{
		"min", strconv.Itoa(v.min),
		"max", strconv.Itoa(v.max),
		"length", strconv.Itoa(length),
	}

	switch {
	case v.min == Unset:
		return v.fail(field, msgLengthMax.count(v.max), args...)
	case v.max == Unset:
		return v.fail(field, msgLengthMin.count(v.min), args...)
	case v.min == v.max:
		return v.fail(field, msgLengthExact.count(v.max), args...)
	default:
		return v.fail(field, msgLengthBetween, args...)
	}
}
