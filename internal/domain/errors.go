package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when a user ID is missing.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrInvalidName is returned when a name is missing or blank after trimming.
	ErrInvalidName = errors.New("name must be a non-empty string")

	// ErrInvalidEmail is returned when an email address is blank or lacks an '@'.
	ErrInvalidEmail = errors.New("email must contain '@'")

	// ErrInvalidPassword is returned when a password is shorter than six characters.
	ErrInvalidPassword = errors.New("password must be at least 6 characters")

	// ErrEmptyEventID is returned when an event ID is missing.
	ErrEmptyEventID = errors.New("event ID cannot be empty")

	// ErrInvalidTitle is returned when an event title is missing or blank after trimming.
	ErrInvalidTitle = errors.New("title must be a non-empty string")

	// ErrEmptyOwner is returned when an event has no owning identity.
	ErrEmptyOwner = errors.New("event owner cannot be empty")
)
