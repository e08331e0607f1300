package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/store"
)

// MockEventStore implements store.EventStore for testing
type MockEventStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, event *domain.Event) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFn        func(ctx context.Context, limit int) ([]*domain.Event, error)
	ListByOwnerFn func(ctx context.Context, ownerUID uuid.UUID, limit int) ([]*domain.Event, error)
	UpdateFn      func(ctx context.Context, id uuid.UUID, update store.EventUpdate) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Events      map[uuid.UUID]*domain.Event
	CreateError error

	// LastUpdate records the most recent Update call for assertions.
	LastUpdate *store.EventUpdate
}

// NewMockEventStore creates a new mock store with initialized defaults
func NewMockEventStore() *MockEventStore {
	return &MockEventStore{
		Events: make(map[uuid.UUID]*domain.Event),
	}
}

// Create implements the EventStore interface
func (m *MockEventStore) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, event)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Events[event.ID] = event
	return nil
}

// GetByID implements the EventStore interface
func (m *MockEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if event, exists := m.Events[id]; exists {
		return event, nil
	}
	return nil, store.ErrEventNotFound
}

// List implements the EventStore interface
func (m *MockEventStore) List(ctx context.Context, limit int) ([]*domain.Event, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}

	events := make([]*domain.Event, 0, len(m.Events))
	for _, event := range m.Events {
		if len(events) >= limit {
			break
		}
		events = append(events, event)
	}
	return events, nil
}

// ListByOwner implements the EventStore interface
func (m *MockEventStore) ListByOwner(
	ctx context.Context,
	ownerUID uuid.UUID,
	limit int,
) ([]*domain.Event, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerUID, limit)
	}

	events := make([]*domain.Event, 0)
	for _, event := range m.Events {
		if len(events) >= limit {
			break
		}
		if event.OwnerUID == ownerUID {
			events = append(events, event)
		}
	}
	return events, nil
}

// Update implements the EventStore interface
func (m *MockEventStore) Update(ctx context.Context, id uuid.UUID, update store.EventUpdate) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}

	event, exists := m.Events[id]
	if !exists {
		return store.ErrEventNotFound
	}

	m.LastUpdate = &update
	event.Title = update.Title
	event.Location = update.Location
	event.ImageURL = update.ImageURL
	event.ImageDeleteURL = update.ImageDeleteURL
	return nil
}

// Delete implements the EventStore interface
func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Events[id]; !exists {
		return store.ErrEventNotFound
	}
	delete(m.Events, id)
	return nil
}

// Verify interface compliance at compile time.
var _ store.EventStore = (*MockEventStore)(nil)
