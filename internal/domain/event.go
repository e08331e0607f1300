package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a public event created by a user. The owner's name
// and email are denormalized onto the event at creation time and never
// refreshed afterwards; only the identity matching OwnerUID may mutate
// or delete the event.
type Event struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Location       *string   `json:"location"`
	Description    *string   `json:"description"`
	ImageURL       *string   `json:"imageUrl"`
	ImageDeleteURL *string   `json:"imageDeleteUrl"`
	OwnerUID       uuid.UUID `json:"ownerUid"`
	OwnerName      string    `json:"ownerName"`
	OwnerEmail     string    `json:"ownerEmail"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewEvent creates an Event owned by the given identity. The title is
// trimmed; optional fields should already be normalized with
// OptionalText. Returns a validation error if the title is blank or the
// owner is missing.
func NewEvent(title string, ownerUID uuid.UUID, ownerName, ownerEmail string) (*Event, error) {
	if !IsNonEmptyString(title) {
		return nil, ErrInvalidTitle
	}
	if ownerUID == uuid.Nil {
		return nil, ErrEmptyOwner
	}

	now := time.Now().UTC()
	return &Event{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(title),
		OwnerUID:   ownerUID,
		OwnerName:  ownerName,
		OwnerEmail: ownerEmail,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Validate checks if the Event has valid data.
func (e *Event) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyEventID
	}
	if !IsNonEmptyString(e.Title) {
		return ErrInvalidTitle
	}
	if e.OwnerUID == uuid.Nil {
		return ErrEmptyOwner
	}
	return nil
}

// IsOwnedBy reports whether the given identity owns the event.
func (e *Event) IsOwnedBy(uid uuid.UUID) bool {
	return e.OwnerUID == uid
}

// OwnerDisplayName resolves the name denormalized onto a new event:
// the stored profile name, then the token-supplied display name, then
// the local part of the email, then "Unknown".
func OwnerDisplayName(profileName, tokenName, email string) string {
	if IsNonEmptyString(profileName) {
		return strings.TrimSpace(profileName)
	}
	if IsNonEmptyString(tokenName) {
		return strings.TrimSpace(tokenName)
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "Unknown"
}
