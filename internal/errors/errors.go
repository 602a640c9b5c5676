package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error classes shared by services and handlers. Concrete errors are marked
// with one of these so errors.Is keeps working through wrapping.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")

	// status codes per error class, checked in order; the first class an
	// error is marked with wins
	statusCodes = []struct {
		class error
		code  int
	}{
		{ErrStorage, http.StatusInternalServerError},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{ErrValidation, http.StatusBadRequest},
	}
)

// NewValidation creates a validation error with the given message.
func NewValidation(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

// NewNotFound creates a not found error with the given message.
func NewNotFound(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// NewConflict creates a conflict error with the given message.
func NewConflict(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrConflict)
}

// NewUnauthorized creates an unauthorized error with the given message.
func NewUnauthorized(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnauthorized)
}

// WrapStorage wraps a database or driver failure. Returns nil for a nil err.
func WrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrStorage)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }

// HTTPStatus returns the status code for err. Unclassified errors map to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, sc := range statusCodes {
		if errors.Is(err, sc.class) {
			return sc.code
		}
	}
	return http.StatusInternalServerError
}
