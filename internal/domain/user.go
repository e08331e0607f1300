package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user profile. The ID doubles as the
// identity id carried in authentication tokens; there is exactly one
// profile per identity.
type User struct {
	ID             uuid.UUID `json:"uid"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User from registration input. It trims the name and
// email, generates the identity id and sets the timestamps.
// Returns a field-specific validation error if the input is invalid.
func NewUser(name, email string) (*User, error) {
	if !IsNonEmptyString(name) {
		return nil, ErrInvalidName
	}
	if !IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if !IsNonEmptyString(u.Name) {
		return ErrInvalidName
	}
	if !IsValidEmail(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}
