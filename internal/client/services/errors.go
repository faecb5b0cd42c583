package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Z3MAX/Expensify/internal/client/api"
	"github.com/Z3MAX/Expensify/internal/client/models"
)

var (
	// ErrValidation marks operations refused before any network call because
	// required local input is missing. Match with errors.Is.
	ErrValidation = errors.New("required input missing")

	// ErrBusy marks operations refused because another of the same kind is
	// already in flight.
	ErrBusy = errors.New("operation already in progress")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateForm checks the required-field rules on form. When fields are
// given, only that subset is checked (login mode); otherwise the whole
// struct is (register mode).
func validateForm(form models.AuthForm, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = validate.Struct(form)
	} else {
		err = validate.StructPartial(form, fields...)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// failureText picks the user-facing message for a backend failure: the
// server's own error text when it sent one, the connectivity message when the
// request never got through, and fallback otherwise.
func failureText(err error, fallback string) string {
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if errors.Is(err, api.ErrUnavailable) {
		return msgConnectionError
	}
	return fallback
}
