package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Deliberately permissive email shape: one non-space run, @, one non-space
// run containing at least one dot. Not RFC 5322 — consecutive dots pass,
// matching what the contact form has always accepted.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates the local@domain.tld shape of a submitted address.
// Empty values pass; combine with required to reject absent fields with the
// right message.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return emailRegex.MatchString(val)
}
