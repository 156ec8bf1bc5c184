package leaderboardservice

import "context"

// Service defines the leaderboard operations exposed to transports.
type Service interface {
	CreateLeaderboard(ctx context.Context, name string) (*LeaderboardKeys, error)
	SubmitScore(ctx context.Context, publicKey, playerName string, score int64) error
	GetScores(ctx context.Context, req ScoresRequest) ([]RankedScore, error)
	GetLeaderboardInfo(ctx context.Context, publicKey string) (*LeaderboardInfo, error)
	DeleteLeaderboard(ctx context.Context, leaderboardID, adminKey string) error
	ResetScores(ctx context.Context, leaderboardID, adminKey string) error
	ExportScores(ctx context.Context, publicKey string) ([]byte, error)
	RenderScoreChart(ctx context.Context, publicKey string, limit *int) ([]byte, error)
}
