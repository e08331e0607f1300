package api

import (
	"errors"
	"net/http"

	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/service/auth"
	"github.com/eventboard/eventboard-api/internal/store"
)

// ErrNotEventOwner is returned when an authenticated caller attempts to
// mutate or delete an event owned by a different identity.
var ErrNotEventOwner = errors.New("not your event")

// ErrInvalidCredentials is returned when a login attempt carries an
// unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. Error messages themselves are passed
// through to clients unchanged.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, ErrNotEventOwner):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidTitle):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}
