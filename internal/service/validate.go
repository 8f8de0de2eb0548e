package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailShape is the local@domain.tld check applied to lead emails.
// It is intentionally looser than RFC 5322.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("lead_email", leadEmail)
	return v
}

// leadEmail validates the address shape; empty values pass
func leadEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return emailShape.MatchString(val)
}
