package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
)

// EventUpdate carries the fields overwritten by an event update.
// Optional fields that are nil are written as NULL, not preserved;
// this matches the surface's overwrite-not-merge update contract.
type EventUpdate struct {
	Title          string
	Location       *string
	ImageURL       *string
	ImageDeleteURL *string
}

// EventStore defines the interface for event data persistence.
type EventStore interface {
	// Create saves a new event to the store.
	Create(ctx context.Context, event *domain.Event) error

	// GetByID retrieves an event by its id.
	// Returns ErrEventNotFound if the event does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// List retrieves up to limit events ordered by creation time descending.
	List(ctx context.Context, limit int) ([]*domain.Event, error)

	// ListByOwner retrieves up to limit events owned by the given
	// identity, ordered by creation time descending.
	ListByOwner(ctx context.Context, ownerUID uuid.UUID, limit int) ([]*domain.Event, error)

	// Update overwrites an event's title, location and image fields and
	// refreshes the update timestamp. The description is left untouched.
	// Returns ErrEventNotFound if the event does not exist.
	Update(ctx context.Context, id uuid.UUID, update EventUpdate) error

	// Delete removes an event from the store.
	// Returns ErrEventNotFound if the event does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
