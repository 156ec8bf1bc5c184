package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for leaderboard and score persistence.
// Every method accepts an optional bun.IDB so callers can run it inside a
// transaction; a nil db falls back to the repository's own connection.
type Repository interface {
	// CreateLeaderboard inserts a new leaderboard.
	CreateLeaderboard(ctx context.Context, db bun.IDB, lb *Leaderboard) error

	// NameExists reports whether a leaderboard already uses name.
	NameExists(ctx context.Context, db bun.IDB, name string) (bool, error)

	// GetByPublicKey retrieves a leaderboard by its public key.
	GetByPublicKey(ctx context.Context, db bun.IDB, publicKey string) (*Leaderboard, error)

	// GetByPublicKeyForShare retrieves a leaderboard and holds a share lock on
	// its row until the surrounding transaction ends.
	GetByPublicKeyForShare(ctx context.Context, db bun.IDB, publicKey string) (*Leaderboard, error)

	// GetByIDAndAdminKeyHash retrieves a leaderboard only when both match.
	GetByIDAndAdminKeyHash(ctx context.Context, db bun.IDB, id, adminKeyHash string) (*Leaderboard, error)

	// DeleteLeaderboard removes a leaderboard; its scores go with it.
	DeleteLeaderboard(ctx context.Context, db bun.IDB, id string) error

	// InsertScore stores a new score.
	InsertScore(ctx context.Context, db bun.IDB, score *Score) error

	// ListScores returns scores ordered per query, ties broken by earliest submission.
	ListScores(ctx context.Context, db bun.IDB, query ScoreQuery) ([]Score, error)

	// CountScores returns how many scores a leaderboard owns.
	CountScores(ctx context.Context, db bun.IDB, leaderboardID string) (int, error)

	// TopScore returns the highest, earliest submitted score or ErrNotFound.
	TopScore(ctx context.Context, db bun.IDB, leaderboardID string) (*Score, error)

	// DeleteScores removes every score of a leaderboard and reports how many.
	DeleteScores(ctx context.Context, db bun.IDB, leaderboardID string) (int64, error)
}
