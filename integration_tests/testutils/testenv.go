package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/Black-And-White-Club/scoreboard-api/db/bundb"
	"github.com/Black-And-White-Club/scoreboard-api/integration_tests/containers"
)

// TestEnvironment holds all resources needed for integration testing
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTestEnvironment starts Postgres, connects through the pgx driver and
// applies the scoreboard migrations.
func NewTestEnvironment(t testing.TB) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	cfg := &config.Config{
		Postgres: config.PostgresConfig{
			DSN:          connStr,
			Driver:       config.DriverPGX,
			MaxOpenConns: 20,
		},
		HTTP: config.HTTPConfig{
			AllowedOrigins: []string{"*"},
		},
		Scoreboard: config.ScoreboardConfig{
			DefaultLimit: 10,
			MaxLimit:     1000,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := bundb.NewBunDB(ctx, cfg.Postgres, logger)
	if err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := bundb.Migrate(ctx, db, logger); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		Config:        cfg,
		Logger:        logger,
	}, nil
}

// Reset empties every table so each test starts from a clean database.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	return CleanLeaderboardIntegrationTables(ctx, env.DB)
}

// Cleanup closes the pool and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(context.Background()); err != nil {
			log.Printf("Error terminating postgres container: %v", err)
		}
	}
	if env.CancelContext != nil {
		env.CancelContext()
	}
}
