package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// MinPasswordLength is the shortest password accepted on sign-up.
const MinPasswordLength = 6

// ValidationError names the first invalid field of a form. It matches
// [ErrValidationFailed] via errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, e.Message())
}

// Message is the text shown next to the form.
func (e *ValidationError) Message() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateRegister(req models.RegisterRequest) error {
	switch {
	case blank(req.Name):
		return invalid("name", "is required")
	case blank(req.Email):
		return invalid("email", "is required")
	case req.Password == "":
		return invalid("password", "is required")
	case utf8.RuneCountInString(req.Password) < MinPasswordLength:
		return invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	case req.Password != req.ConfirmPassword:
		return invalid("confirmation", "does not match the password")
	}
	return nil
}

func validateCredentials(c models.Credentials) error {
	switch {
	case blank(c.Email):
		return invalid("email", "is required")
	case c.Password == "":
		return invalid("password", "is required")
	}
	return nil
}

func validateCategory(c models.Category) error {
	switch {
	case blank(c.Name):
		return invalid("name", "is required")
	case !c.Type.Valid():
		return invalid("type", "must be income or expense")
	}
	return nil
}

func validateAccount(a models.Account) error {
	if blank(a.Name) {
		return invalid("name", "is required")
	}
	return nil
}

func validateTransaction(t models.Transaction) error {
	switch {
	case t.Amount == 0:
		return invalid("amount", "is required")
	case t.Date.IsZero():
		return invalid("date", "is required")
	case !t.Type.Valid():
		return invalid("type", "must be income or expense")
	case t.AccountID.IsZero():
		return invalid("account", "is required")
	case t.CategoryID.IsZero():
		return invalid("category", "is required")
	}
	return nil
}
