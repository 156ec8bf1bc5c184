package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard"
	"github.com/Black-And-White-Club/scoreboard-api/app/observability"
	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/Black-And-White-Club/scoreboard-api/db/bundb"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// App wires configuration, the database pool and the HTTP surface together.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bun.DB
	Router        chi.Router

	LeaderboardModule *leaderboard.Module

	logger *slog.Logger
}

// NewApp connects to Postgres, applies migrations when configured and builds
// the HTTP router.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.New(cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := obs.Logger

	db, err := bundb.NewBunDB(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := bundb.Migrate(ctx, db, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	app, err := newApp(ctx, cfg, obs, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

// newApp builds the app around an already migrated database.
func newApp(ctx context.Context, cfg *config.Config, obs *observability.Observability, db *bun.DB) (*App, error) {
	router := newHTTPRouter(cfg.HTTP, obs.Logger, db)

	leaderboardModule, err := leaderboard.NewModule(ctx, cfg, obs, db, router)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize leaderboard module: %w", err)
	}

	return &App{
		Config:            cfg,
		Observability:     obs,
		DB:                db,
		Router:            router,
		LeaderboardModule: leaderboardModule,
		logger:            obs.Logger,
	}, nil
}

// Close stops every module and closes the database pool.
func (app *App) Close() error {
	var errs []error
	if app.LeaderboardModule != nil {
		if err := app.LeaderboardModule.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
