package leaderboardservice

import "time"

// OrderDesc lists highest scores first. Any other order token lists ascending.
const OrderDesc = "desc"

// LeaderboardKeys is returned once, on creation. The admin key cannot be
// retrieved again.
type LeaderboardKeys struct {
	LeaderboardID string `json:"leaderboard_id"`
	PublicKey     string `json:"public_key"`
	AdminKey      string `json:"admin_key"`
}

// ScoresRequest describes a ranked listing.
type ScoresRequest struct {
	PublicKey string
	// Limit is nil when absent, which applies the configured default. Values
	// above the configured maximum are clamped; 0 lists nothing.
	Limit *int
	Order string
	// Since is an optional RFC 3339 timestamp or English expression such as
	// "yesterday" or "2 days ago".
	Since string
}

// RankedScore is one row of a listing; Rank is its 1-based position.
type RankedScore struct {
	Rank        int       `json:"rank"`
	PlayerName  string    `json:"player_name"`
	Score       int64     `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TopScore is the best entry of a leaderboard.
type TopScore struct {
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
}

// LeaderboardInfo summarizes a leaderboard. TopScore is nil when it has no scores.
type LeaderboardInfo struct {
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	TotalScores int       `json:"total_scores"`
	TopScore    *TopScore `json:"top_score"`
}
