package leaderboarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// InsertScore stores a new score and fills in its generated id.
func (r *Impl) InsertScore(ctx context.Context, db bun.IDB, score *Score) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(score).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", translateError(err))
	}
	return nil
}

// ListScores returns scores for one leaderboard. Equal scores are always
// ordered by earliest submission, then by id.
func (r *Impl) ListScores(ctx context.Context, db bun.IDB, query ScoreQuery) ([]Score, error) {
	db = r.resolveDB(db)
	scores := make([]Score, 0)

	q := db.NewSelect().
		Model(&scores).
		Where("leaderboard_id = ?", query.LeaderboardID)

	if query.Since != nil {
		q = q.Where("submitted_at >= ?", *query.Since)
	}

	if query.Order == Descending {
		q = q.OrderExpr("score DESC")
	} else {
		q = q.OrderExpr("score ASC")
	}
	q = q.OrderExpr("submitted_at ASC").OrderExpr("id ASC")

	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scores, nil
}

// CountScores returns how many scores a leaderboard owns.
func (r *Impl) CountScores(ctx context.Context, db bun.IDB, leaderboardID string) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Score)(nil)).
		Where("leaderboard_id = ?", leaderboardID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count scores: %w", err)
	}
	return count, nil
}

// TopScore returns the highest score, earliest submission first on ties.
func (r *Impl) TopScore(ctx context.Context, db bun.IDB, leaderboardID string) (*Score, error) {
	db = r.resolveDB(db)
	score := new(Score)
	err := db.NewSelect().
		Model(score).
		Where("leaderboard_id = ?", leaderboardID).
		OrderExpr("score DESC").
		OrderExpr("submitted_at ASC").
		OrderExpr("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get top score: %w", err)
	}
	return score, nil
}

// DeleteScores removes every score of a leaderboard.
func (r *Impl) DeleteScores(ctx context.Context, db bun.IDB, leaderboardID string) (int64, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Score)(nil)).
		Where("leaderboard_id = ?", leaderboardID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scores: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
