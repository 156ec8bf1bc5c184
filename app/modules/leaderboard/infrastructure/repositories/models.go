package leaderboarddb

import (
	"time"

	"github.com/uptrace/bun"
)

// Leaderboard is a named collection of scores. The admin key itself is never
// stored; only its SHA-256 hex digest.
type Leaderboard struct {
	bun.BaseModel `bun:"table:leaderboards,alias:lb"`

	ID           string    `bun:"id,pk"`
	Name         string    `bun:"name,notnull,unique"`
	PublicKey    string    `bun:"public_key,notnull,unique"`
	AdminKeyHash string    `bun:"admin_key_hash,notnull,unique"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Score is a single submission owned by one leaderboard.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID            int64     `bun:"id,pk,autoincrement"`
	LeaderboardID string    `bun:"leaderboard_id,notnull"`
	PlayerName    string    `bun:"player_name,notnull"`
	Score         int64     `bun:"score,notnull"`
	SubmittedAt   time.Time `bun:"submitted_at,nullzero,notnull,default:current_timestamp"`
}

// ScoreOrder selects the direction of score ordering.
type ScoreOrder int

const (
	Ascending ScoreOrder = iota
	Descending
)

// ScoreQuery narrows a score listing.
type ScoreQuery struct {
	LeaderboardID string
	Order         ScoreOrder
	// Limit <= 0 returns every matching row.
	Limit int
	// Since, when set, excludes scores submitted before it.
	Since *time.Time
}
