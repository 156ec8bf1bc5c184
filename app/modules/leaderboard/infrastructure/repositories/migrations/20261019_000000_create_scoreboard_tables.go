package leaderboardmigrations

import (
	"context"
	"fmt"

	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating leaderboards and scores tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().
				Model((*leaderboarddb.Leaderboard)(nil)).
				IfNotExists().
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create leaderboards table: %w", err)
			}

			if _, err := tx.NewCreateTable().
				Model((*leaderboarddb.Score)(nil)).
				IfNotExists().
				ForeignKey(`("leaderboard_id") REFERENCES "leaderboards" ("id") ON DELETE CASCADE`).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create scores table: %w", err)
			}

			// Serves ordered listing and top-score lookups in both directions.
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_scores_leaderboard_score
				ON scores (leaderboard_id, score, submitted_at, id);
			`); err != nil {
				return fmt.Errorf("failed to create scores index: %w", err)
			}

			fmt.Println("Scoreboard tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scores and leaderboards tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDropTable().Model((*leaderboarddb.Score)(nil)).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop scores table: %w", err)
			}
			if _, err := tx.NewDropTable().Model((*leaderboarddb.Leaderboard)(nil)).IfExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop leaderboards table: %w", err)
			}

			fmt.Println("Scoreboard tables dropped successfully!")
			return nil
		})
	})
}
