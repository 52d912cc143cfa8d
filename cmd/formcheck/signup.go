package main

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// nicknameFilter reduces pasted markup to plain single-line text.
var nicknameFilter = sanitizer.Compose(
	sanitizer.StripHTML,
	sanitizer.RemoveControlChars,
	sanitizer.SingleLine,
)

// signupFields builds the demo sign-up form fields.
func signupFields() []*form.Field {
	return []*form.Field{
		form.NewField("username",
			form.WithFilters(sanitizer.Trim, sanitizer.ToLower),
			form.WithValidators(
				validator.NewDataRequired(),
				validator.MustLength(3, 20),
			),
		),
		form.NewField("password", form.WithValidators(
			validator.NewInputRequired(),
			validator.MustLength(8, validator.Unset),
		)),
		form.NewField("confirm",
			form.WithLabel("Confirm password"),
			form.WithValidators(validator.NewEqualTo("password")),
		),
		form.NewField("nickname",
			form.WithFilters(nicknameFilter),
			form.WithValidators(
				validator.NewInputOptional(),
				validator.MustLength(validator.Unset, 12),
			),
		),
		form.NewField("email",
			form.WithLabel("E-mail"),
			form.WithFilters(sanitizer.NormalizeEmail),
			form.WithValidators(
				validator.NewInputOptional(),
				validator.MustLength(6, 254),
			),
		),
		form.NewField("phone",
			form.WithFilters(sanitizer.KeepDigits, sanitizer.Truncate(15)),
			form.WithValidators(
				validator.NewInputOptional(),
				validator.MustLength(7, validator.Unset),
			),
		),
		form.NewField("country",
			form.WithDefault("us"),
			form.WithFilters(sanitizer.Trim, sanitizer.ToUpper),
			form.WithValidators(
				validator.NewInputOptional(),
				validator.MustLength(2, 2),
			),
		),
		form.NewField("terms",
			form.WithLabel("Terms of service"),
			form.WithValidators(validator.NewFieldRequired()),
		),
	}
}
