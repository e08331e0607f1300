package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context, limit int) ([]*domain.User, error)
	UpdateNameFn func(ctx context.Context, id uuid.UUID, name string) error

	// Data for default implementation
	Users       map[string]*domain.User
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if user, exists := m.Users[email]; exists {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context, limit int) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		if len(users) >= limit {
			break
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateName implements the UserStore interface
func (m *MockUserStore) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, id, name)
	}

	for _, user := range m.Users {
		if user.ID == id {
			user.Name = name
			return nil
		}
	}
	return store.ErrUserNotFound
}

// Verify interface compliance at compile time.
var _ store.UserStore = (*MockUserStore)(nil)
