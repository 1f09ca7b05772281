package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// CreateUserInput holds parameters for user creation.
type CreateUserInput struct {
	Name  string
	Email string
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 320:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
