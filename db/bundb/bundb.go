// db/bundb/bundb.go
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	leaderboardmigrations "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories/migrations"
)

// NewBunDB opens a pooled Postgres connection with the configured driver and
// returns it wrapped in a bun.DB with the scoreboard models registered.
func NewBunDB(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*bun.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sqldb, err := pgConn(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := BunDB(sqldb)
	logger.InfoContext(ctx, "Database connection established",
		"driver", cfg.Driver,
		"max_open_conns", cfg.MaxOpenConns,
	)
	return db, nil
}

// BunDB returns a new bun.DB for given sql.DB connection pool.
func BunDB(sqldb *sql.DB) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel((*leaderboarddb.Leaderboard)(nil), (*leaderboarddb.Score)(nil))
	return db
}

func pgConn(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	var sqldb *sql.DB
	switch cfg.Driver {
	case config.DriverPGX:
		pgxCfg, err := pgx.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DSN: %w", err)
		}
		sqldb = stdlib.OpenDB(*pgxCfg)
	case config.DriverPGDriver, "":
		sqldb = sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	default:
		return nil, fmt.Errorf("unknown postgres driver %q", cfg.Driver)
	}

	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}

// Migrate initializes the bun migration tables and applies every pending
// scoreboard migration.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	migrator := migrate.NewMigrator(db, leaderboardmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to lock migrations: %w", err)
	}
	defer migrator.Unlock(ctx) //nolint:errcheck

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to run leaderboard migrations: %w", err)
	}
	if group.IsZero() {
		logger.InfoContext(ctx, "No new migrations to run")
	} else {
		logger.InfoContext(ctx, "Applied migrations", "group", group.String())
	}
	return nil
}
