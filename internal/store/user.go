package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry
	// a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their identity id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves up to limit users ordered by name ascending.
	List(ctx context.Context, limit int) ([]*domain.User, error)

	// UpdateName sets a user's name and refreshes the update timestamp.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}
