package api

import (
	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Field rules are enforced in the handler so that failures carry the
// field-specific message.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	OK    bool      `json:"ok,omitempty"`
	UID   uuid.UUID `json:"uid"`
	Token string    `json:"token"`
}

// UpdateProfileRequest defines the payload for the own-profile update
// endpoint. The target row is always the caller's and never carries an id.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// UserListResponse defines the response for the user listing endpoint.
type UserListResponse struct {
	Count int            `json:"count"`
	Users []*domain.User `json:"users"`
	Limit int            `json:"limit"`
}

// CreateEventRequest defines the payload for the event creation endpoint.
// All fields except the title are optional and stored as explicit nulls
// when absent or blank.
type CreateEventRequest struct {
	Title          string `json:"title"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
	ImageDeleteURL string `json:"imageDeleteUrl"`
}

// UpdateEventRequest defines the payload for the event update endpoint.
// The description is not part of the update surface. Optional fields
// omitted from the request are reset to null, not preserved.
type UpdateEventRequest struct {
	Title          string `json:"title"`
	Location       string `json:"location"`
	ImageURL       string `json:"imageUrl"`
	ImageDeleteURL string `json:"imageDeleteUrl"`
}

// EventListResponse defines the response for the event listing endpoints.
type EventListResponse struct {
	Count  int             `json:"count"`
	Events []*domain.Event `json:"events"`
	Limit  int             `json:"limit"`
}

// CreateEventResponse defines the response for the event creation endpoint.
type CreateEventResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}

// StatusResponse defines the generic ok/message response used by
// update and delete endpoints.
type StatusResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg,omitempty"`
}

// ImageUploadResponse defines the response for the image upload proxy.
// DeleteURL is null when the provider did not return one.
type ImageUploadResponse struct {
	URL       string  `json:"url"`
	DeleteURL *string `json:"delete_url"`
}

// ImageDeleteRequest defines the payload for the image deletion proxy.
type ImageDeleteRequest struct {
	DeleteURL string `json:"delete_url"`
}
