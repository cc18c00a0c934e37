// Package server initializes the engine: configuration, logging, the
// database connection with migrations, photo storage, the classifier, and
// the services built on top of them.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/snowsquad/engine/internal/classifier"
	"github.com/snowsquad/engine/internal/logging"
	"github.com/snowsquad/engine/internal/scoring"
	"github.com/snowsquad/engine/internal/server/config"
	"github.com/snowsquad/engine/internal/server/photos"
	"github.com/snowsquad/engine/internal/server/repositories/repomanager"
	"github.com/snowsquad/engine/internal/server/services"
)

// sqlOpen is a seam for testing database initialization.
var sqlOpen = sql.Open

// App bundles the wired engine. Embedding applications reach the domain
// through TaskService and UserService.
type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	TaskService *services.TaskService
	UserService *services.UserService
}

// NewApp wires the engine from the given configuration and runs migrations.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sqlOpen("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	detector := classifier.NewHTTPClient(cfg.ClassifierEndpoint, cfg.ClassifierAPIKey,
		cfg.ClassifierTimeout, classifier.WithRetry(cfg.ClassifierRetries, 200*time.Millisecond))
	scorer := scoring.NewScorer(detector, scoring.LinearAreaPolicy{}, logger)
	store := photos.NewS3Store(cfg)

	ts := services.NewTaskService(db, rm, scorer, store, logger)
	us := services.NewUserService(db, rm, cfg, logger)

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		TaskService: ts,
		UserService: us,
	}, nil
}

// Close releases the database connection.
func (app *App) Close() error {
	return app.db.Close()
}
