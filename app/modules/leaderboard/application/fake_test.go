package leaderboardservice

import (
	"context"

	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Leaderboard Repo
// ------------------------

type FakeLeaderboardRepo struct {
	trace []string

	CreateLeaderboardFunc      func(ctx context.Context, db bun.IDB, lb *leaderboarddb.Leaderboard) error
	NameExistsFunc             func(ctx context.Context, db bun.IDB, name string) (bool, error)
	GetByPublicKeyFunc         func(ctx context.Context, db bun.IDB, publicKey string) (*leaderboarddb.Leaderboard, error)
	GetByPublicKeyForShareFunc func(ctx context.Context, db bun.IDB, publicKey string) (*leaderboarddb.Leaderboard, error)
	GetByIDAndAdminKeyHashFunc func(ctx context.Context, db bun.IDB, id, adminKeyHash string) (*leaderboarddb.Leaderboard, error)
	DeleteLeaderboardFunc      func(ctx context.Context, db bun.IDB, id string) error
	InsertScoreFunc            func(ctx context.Context, db bun.IDB, score *leaderboarddb.Score) error
	ListScoresFunc             func(ctx context.Context, db bun.IDB, query leaderboarddb.ScoreQuery) ([]leaderboarddb.Score, error)
	CountScoresFunc            func(ctx context.Context, db bun.IDB, leaderboardID string) (int, error)
	TopScoreFunc               func(ctx context.Context, db bun.IDB, leaderboardID string) (*leaderboarddb.Score, error)
	DeleteScoresFunc           func(ctx context.Context, db bun.IDB, leaderboardID string) (int64, error)
}

func NewFakeLeaderboardRepo() *FakeLeaderboardRepo {
	return &FakeLeaderboardRepo{
		trace: []string{},
	}
}

func (f *FakeLeaderboardRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeaderboardRepo) Trace() []string {
	return f.trace
}

// --- Repository Interface Implementation ---

func (f *FakeLeaderboardRepo) CreateLeaderboard(ctx context.Context, db bun.IDB, lb *leaderboarddb.Leaderboard) error {
	f.record("CreateLeaderboard")
	if f.CreateLeaderboardFunc != nil {
		return f.CreateLeaderboardFunc(ctx, db, lb)
	}
	return nil
}

func (f *FakeLeaderboardRepo) NameExists(ctx context.Context, db bun.IDB, name string) (bool, error) {
	f.record("NameExists")
	if f.NameExistsFunc != nil {
		return f.NameExistsFunc(ctx, db, name)
	}
	return false, nil
}

func (f *FakeLeaderboardRepo) GetByPublicKey(ctx context.Context, db bun.IDB, publicKey string) (*leaderboarddb.Leaderboard, error) {
	f.record("GetByPublicKey")
	if f.GetByPublicKeyFunc != nil {
		return f.GetByPublicKeyFunc(ctx, db, publicKey)
	}
	return nil, leaderboarddb.ErrNotFound
}

func (f *FakeLeaderboardRepo) GetByPublicKeyForShare(ctx context.Context, db bun.IDB, publicKey string) (*leaderboarddb.Leaderboard, error) {
	f.record("GetByPublicKeyForShare")
	if f.GetByPublicKeyForShareFunc != nil {
		return f.GetByPublicKeyForShareFunc(ctx, db, publicKey)
	}
	return nil, leaderboarddb.ErrNotFound
}

func (f *FakeLeaderboardRepo) GetByIDAndAdminKeyHash(ctx context.Context, db bun.IDB, id, adminKeyHash string) (*leaderboarddb.Leaderboard, error) {
	f.record("GetByIDAndAdminKeyHash")
	if f.GetByIDAndAdminKeyHashFunc != nil {
		return f.GetByIDAndAdminKeyHashFunc(ctx, db, id, adminKeyHash)
	}
	return nil, leaderboarddb.ErrNotFound
}

func (f *FakeLeaderboardRepo) DeleteLeaderboard(ctx context.Context, db bun.IDB, id string) error {
	f.record("DeleteLeaderboard")
	if f.DeleteLeaderboardFunc != nil {
		return f.DeleteLeaderboardFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeLeaderboardRepo) InsertScore(ctx context.Context, db bun.IDB, score *leaderboarddb.Score) error {
	f.record("InsertScore")
	if f.InsertScoreFunc != nil {
		return f.InsertScoreFunc(ctx, db, score)
	}
	return nil
}

func (f *FakeLeaderboardRepo) ListScores(ctx context.Context, db bun.IDB, query leaderboarddb.ScoreQuery) ([]leaderboarddb.Score, error) {
	f.record("ListScores")
	if f.ListScoresFunc != nil {
		return f.ListScoresFunc(ctx, db, query)
	}
	return []leaderboarddb.Score{}, nil
}

func (f *FakeLeaderboardRepo) CountScores(ctx context.Context, db bun.IDB, leaderboardID string) (int, error) {
	f.record("CountScores")
	if f.CountScoresFunc != nil {
		return f.CountScoresFunc(ctx, db, leaderboardID)
	}
	return 0, nil
}

func (f *FakeLeaderboardRepo) TopScore(ctx context.Context, db bun.IDB, leaderboardID string) (*leaderboarddb.Score, error) {
	f.record("TopScore")
	if f.TopScoreFunc != nil {
		return f.TopScoreFunc(ctx, db, leaderboardID)
	}
	return nil, leaderboarddb.ErrNotFound
}

func (f *FakeLeaderboardRepo) DeleteScores(ctx context.Context, db bun.IDB, leaderboardID string) (int64, error) {
	f.record("DeleteScores")
	if f.DeleteScoresFunc != nil {
		return f.DeleteScoresFunc(ctx, db, leaderboardID)
	}
	return 0, nil
}

// Interface assertion
var _ leaderboarddb.Repository = (*FakeLeaderboardRepo)(nil)
