package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/eventboard/eventboard-api/internal/config"
	"github.com/eventboard/eventboard-api/internal/platform/imghost"
	"github.com/eventboard/eventboard-api/internal/platform/postgres"
	"github.com/eventboard/eventboard-api/internal/service/auth"
	"github.com/eventboard/eventboard-api/internal/store"
)

// application holds the long-lived dependencies of the server: the
// configuration, the database handle and the service and store
// implementations injected into the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	eventStore store.EventStore

	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
	imageService   imghost.Service
}

// newApplication wires the application dependency graph: database
// connection, migrations, stores and services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userStore:      postgres.NewPostgresUserStore(db, logger),
		eventStore:     postgres.NewPostgresEventStore(db, logger),
		tokenService:   tokenService,
		passwordHasher: auth.NewBcryptHasher(),
		imageService:   imghost.NewClient(cfg.ImageHost, nil, logger),
	}, nil
}

// Run starts the HTTP server and blocks until shutdown completes.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
