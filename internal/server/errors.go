package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a request body that could not be decoded
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// newValidationError reports the first failed field of a validator error.
func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrBadRequest{Message: err.Error()}
	}

	fe := verrs[0]
	msg := "failed " + fe.Tag()
	if fe.Tag() == "max" {
		unit := "items"
		if fe.Kind() == reflect.String {
			unit = "characters"
		}
		msg = "must be at most " + fe.Param() + " " + unit
	}
	return &ErrValidation{Field: fe.Field(), Message: msg}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		badRequestErr *ErrBadRequest
		maxBytesErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &badRequestErr):
		return http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
