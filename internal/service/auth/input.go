package auth

import (
	"net/mail"

	"github.com/wholestock/inventory-backend/internal/domain"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) < minUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
	case len(i.Username) > maxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
