package validator

// message is a default error text with its translation key.
// A message with a plural form is selected by n.
type message struct {
	key      string
	singular string
	plural   string
	n        int
}

func (m message) count(n int) message {
	m.n = n
	return m
}

func (m message) translate(field Field, args ...string) string {
	if m.plural != "" {
		return field.Ngettext(m.key, m.singular, m.plural, m.n, args...)
	}
	return field.Gettext(m.key, m.singular, args...)
}

// Translation keys of the default messages.
const (
	KeyFieldExists    = "validation.field_exists"
	KeyRequired       = "validation.required"
	KeyRequiredData   = "validation.required_data"
	KeyLengthMax      = "validation.length.max"
	KeyLengthMin      = "validation.length.min"
	KeyLengthExact    = "validation.length.exact"
	KeyLengthBetween  = "validation.length.between"
	KeyEqualTo        = "validation.equal_to.mismatch"
	KeyEqualToMissing = "validation.equal_to.invalid_field"
)

var (
	msgFieldExists = message{key: KeyFieldExists, singular: "This field must exist."}

	msgRequired = message{key: KeyRequired, singular: "This field is required."}

	msgRequiredData = message{
		key:      KeyRequiredData,
		singular: "This field is required to be more than just whitespace.",
	}

	msgLengthMax = message{
		key:      KeyLengthMax,
		singular: "Field cannot be longer than %{max} character.",
		plural:   "Field cannot be longer than %{max} characters.",
	}

	msgLengthMin = message{
		key:      KeyLengthMin,
		singular: "Field must be at least %{min} character long.",
		plural:   "Field must be at least %{min} characters long.",
	}

	msgLengthExact = message{
		key:      KeyLengthExact,
		singular: "Field must be exactly %{max} character long.",
		plural:   "Field must be exactly %{max} characters long.",
	}

	msgLengthBetween = message{
		key:      KeyLengthBetween,
		singular: "Field must be between %{min} and %{max} characters long.",
	}

	msgEqualTo = message{key: KeyEqualTo, singular: "Field must be equal to %{other_name}."}

	msgEqualToMissing = message{key: KeyEqualToMissing, singular: "Invalid field name '%{other_name}'."}
)
