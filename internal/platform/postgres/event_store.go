package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventboard/eventboard-api/internal/domain"
	"github.com/eventboard/eventboard-api/internal/platform/logger"
	"github.com/eventboard/eventboard-api/internal/store"
)

// PostgresEventStore implements the store.EventStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventStore creates a new PostgreSQL implementation of the
// EventStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresEventStore(db store.DBTX, logger *slog.Logger) *PostgresEventStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "event_store")),
	}
}

// Ensure PostgresEventStore implements store.EventStore interface
var _ store.EventStore = (*PostgresEventStore)(nil)

const eventColumns = `id, title, location, description, image_url, image_delete_url,
		owner_uid, owner_name, owner_email, created_at, updated_at`

// Create implements store.EventStore.Create
func (s *PostgresEventStore) Create(ctx context.Context, event *domain.Event) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.Title,
		event.Location,
		event.Description,
		event.ImageURL,
		event.ImageDeleteURL,
		event.OwnerUID,
		event.OwnerName,
		event.OwnerEmail,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()),
			slog.String("owner_uid", event.OwnerUID.String()))
		return err
	}

	log.Info("event created successfully",
		slog.String("event_id", event.ID.String()),
		slog.String("owner_uid", event.OwnerUID.String()))
	return nil
}

// GetByID implements store.EventStore.GetByID
// Returns store.ErrEventNotFound if the event does not exist.
func (s *PostgresEventStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	event, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("event not found", slog.String("event_id", id.String()))
			return nil, store.ErrEventNotFound
		}
		log.Error("failed to get event by ID",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return nil, err
	}

	return event, nil
}

// List implements store.EventStore.List
// Events are ordered by creation time descending.
func (s *PostgresEventStore) List(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC
		LIMIT $1
	`
	return s.queryEvents(ctx, query, limit)
}

// ListByOwner implements store.EventStore.ListByOwner
func (s *PostgresEventStore) ListByOwner(
	ctx context.Context,
	ownerUID uuid.UUID,
	limit int,
) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE owner_uid = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return s.queryEvents(ctx, query, ownerUID, limit)
}

// Update implements store.EventStore.Update
// Optional fields not present in the update are written as NULL rather
// than preserved; the description column is not touched.
// Returns store.ErrEventNotFound if the event does not exist.
func (s *PostgresEventStore) Update(ctx context.Context, id uuid.UUID, update store.EventUpdate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE events
		SET title = $1, location = $2, image_url = $3, image_delete_url = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		update.Title,
		update.Location,
		update.ImageURL,
		update.ImageDeleteURL,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update event",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrEventNotFound); err != nil {
		log.Debug("event not found for update", slog.String("event_id", id.String()))
		return err
	}

	log.Info("event updated successfully", slog.String("event_id", id.String()))
	return nil
}

// Delete implements store.EventStore.Delete
// Returns store.ErrEventNotFound if the event does not exist.
func (s *PostgresEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete event",
			slog.String("error", err.Error()),
			slog.String("event_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrEventNotFound); err != nil {
		log.Debug("event not found for delete", slog.String("event_id", id.String()))
		return err
	}

	log.Info("event deleted successfully", slog.String("event_id", id.String()))
	return nil
}

// queryEvents runs a SELECT over the events table and scans all rows.
func (s *PostgresEventStore) queryEvents(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Event, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query events", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			log.Error("failed to scan event row", slog.String("error", err.Error()))
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if events == nil {
		events = []*domain.Event{}
	}

	return events, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Location,
		&event.Description,
		&event.ImageURL,
		&event.ImageDeleteURL,
		&event.OwnerUID,
		&event.OwnerName,
		&event.OwnerEmail,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
