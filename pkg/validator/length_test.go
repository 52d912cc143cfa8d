package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewLength(t *testing.T) {
	t.Run("rejects missing bounds", func(t *testing.T) {
		v, err := validator.NewLength(validator.Unset, validator.Unset)
		require.ErrorIs(t, err, validator.ErrInvalidLengthBounds)
		assert.Nil(t, v)
	})

	t.Run("rejects min greater than max", func(t *testing.T) {
		_, err := validator.NewLength(5, 2)
		require.ErrorIs(t, err, validator.ErrInvalidLengthBounds)
		assert.Contains(t, err.Error(), "min (5) cannot be greater than max (2)")
	})

	t.Run("rejects negative bounds", func(t *testing.T) {
		_, err := validator.NewLength(-3, 2)
		require.ErrorIs(t, err, validator.ErrInvalidLengthBounds)
	})

	t.Run("accepts a single bound", func(t *testing.T) {
		v, err := validator.NewLength(validator.Unset, 10)
		require.NoError(t, err)
		assert.Equal(t, validator.Unset, v.Min())
		assert.Equal(t, 10, v.Max())
	})

	t.Run("MustLength panics on misconfiguration", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustLength(validator.Unset, validator.Unset) })
		assert.NotPanics(t, func() { validator.MustLength(3, 3) })
	})
}

func TestLength(t *testing.T) {
	v := validator.MustLength(2, 5)

	tests := []struct {
		name    string
		raw     []string
		message string
	}{
		{name: "within range", raw: []string{"ab"}, message: ""},
		{name: "upper bound inclusive", raw: []string{"abcde"}, message: ""},
		{name: "too short", raw: []string{"a"}, message: "Field must be between 2 and 5 characters long."},
		{name: "too long", raw: []string{"abcdef"}, message: "Field must be between 2 and 5 characters long."},
		{name: "absent input", raw: nil, message: "Field must be between 2 and 5 characters long."},
		{name: "counts characters not bytes", raw: []string{"żółć"}, message: ""},
		{name: "only first token", raw: []string{"ab", "abcdefgh"}, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(nil, newTestField(tt.raw...))
			msg, _ := res.Message()
			assert.Equal(t, tt.message != "", res.Stopped())
			assert.Equal(t, tt.message, msg)
		})
	}

	t.Run("flags", func(t *testing.T) {
		assert.Equal(t, validator.Flags{"minlength": 2, "maxlength": 5}, v.FieldFlags())
	})
}

func TestLengthMessages(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		raw     string
		message string
	}{
		{name: "exact plural", min: 3, max: 3, raw: "ab", message: "Field must be exactly 3 characters long."},
		{name: "exact singular", min: 1, max: 1, raw: "ab", message: "Field must be exactly 1 character long."},
		{name: "min only plural", min: 4, max: validator.Unset, raw: "ab", message: "Field must be at least 4 characters long."},
		{name: "min only singular", min: 1, max: validator.Unset, raw: "", message: "Field must be at least 1 character long."},
		{name: "max only plural", min: validator.Unset, max: 2, raw: "abc", message: "Field cannot be longer than 2 characters."},
		{name: "max only singular", min: validator.Unset, max: 1, raw: "abc", message: "Field cannot be longer than 1 character."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.MustLength(tt.min, tt.max)
			msg, ok := v.Validate(nil, newTestField(tt.raw)).Message()
			require.True(t, ok)
			assert.Equal(t, tt.message, msg)
		})
	}

	t.Run("max only passes absent input", func(t *testing.T) {
		v := validator.MustLength(validator.Unset, 3)
		assert.False(t, v.Validate(nil, newTestField()).Stopped())
	})

	t.Run("zero min fails absent input", func(t *testing.T) {
		v := validator.MustLength(0, validator.Unset)
		assert.True(t, v.Validate(nil, newTestField()).Stopped())
		assert.False(t, v.Validate(nil, newTestField("")).Stopped())
	})

	t.Run("custom message is interpolated", func(t *testing.T) {
		v := validator.MustLength(2, 5, validator.WithMessage("Got %{length}, want %{min}..%{max}."))
		msg, _ := v.Validate(nil, newTestField("abcdefg")).Message()
		assert.Equal(t, "Got 7, want 2..5.", msg)
	})

	t.Run("flags for single bound", func(t *testing.T) {
		assert.Equal(t, validator.Flags{"maxlength": 3}, validator.MustLength(validator.Unset, 3).FieldFlags())
		assert.Equal(t, validator.Flags{"minlength": 3}, validator.MustLength(3, validator.Unset).FieldFlags())
	})

	t.Run("flags cannot be mutated through the copy", func(t *testing.T) {
		v := validator.MustLength(2, 5)
		flags := v.FieldFlags()
		flags["maxlength"] = 100
		assert.Equal(t, 5, v.FieldFlags()["maxlength"])
	})
}
