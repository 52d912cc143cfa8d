// Package sanitizer provides small string transforms used as form field
// filters, plus generic Apply and Compose helpers to chain them.
//
// Filters run on the coerced value of a field after a submission is
// processed. They never change the raw submitted tokens, so required and
// length checks still see what the user sent:
//
//	email := form.NewField("email", form.WithFilters(sanitizer.NormalizeEmail))
//	bio := form.NewField("bio", form.WithFilters(
//	    sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine, sanitizer.Truncate(160)),
//	))
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
