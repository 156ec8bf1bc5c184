package leaderboardservice

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/scoreboard-api/app/shared/results"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// CreateLeaderboard registers a new leaderboard under a unique name and
// returns its keys. This is the only time the admin key is revealed.
func (s *LeaderboardService) CreateLeaderboard(ctx context.Context, name string) (*LeaderboardKeys, error) {
	return execute(s, ctx, "CreateLeaderboard", name, func(ctx context.Context, db bun.IDB) (results.OperationResult[*LeaderboardKeys, error], error) {
		return s.createLeaderboardLogic(ctx, db, name)
	})
}

func (s *LeaderboardService) createLeaderboardLogic(ctx context.Context, db bun.IDB, name string) (results.OperationResult[*LeaderboardKeys, error], error) {
	exists, err := s.repo.NameExists(ctx, db, name)
	if err != nil {
		return results.OperationResult[*LeaderboardKeys, error]{}, err
	}
	if exists {
		return results.FailureResult[*LeaderboardKeys, error](ErrConflict), nil
	}

	keys, err := generateKeys()
	if err != nil {
		return results.OperationResult[*LeaderboardKeys, error]{}, err
	}

	lb := &leaderboarddb.Leaderboard{
		ID:           keys.LeaderboardID,
		Name:         name,
		PublicKey:    keys.PublicKey,
		AdminKeyHash: hashAdminKey(keys.AdminKey),
		CreatedAt:    s.timestamp(),
	}
	if err := s.repo.CreateLeaderboard(ctx, db, lb); err != nil {
		// A concurrent create won the race for the name.
		if errors.Is(err, leaderboarddb.ErrUniqueViolation) {
			return results.FailureResult[*LeaderboardKeys, error](ErrConflict), nil
		}
		return results.OperationResult[*LeaderboardKeys, error]{}, err
	}

	return results.SuccessResult[*LeaderboardKeys, error](keys), nil
}

// GetLeaderboardInfo summarizes the leaderboard behind publicKey.
func (s *LeaderboardService) GetLeaderboardInfo(ctx context.Context, publicKey string) (*LeaderboardInfo, error) {
	return execute(s, ctx, "GetLeaderboardInfo", redact(publicKey), func(ctx context.Context, db bun.IDB) (results.OperationResult[*LeaderboardInfo, error], error) {
		return s.getLeaderboardInfoLogic(ctx, db, publicKey)
	})
}

func (s *LeaderboardService) getLeaderboardInfoLogic(ctx context.Context, db bun.IDB, publicKey string) (results.OperationResult[*LeaderboardInfo, error], error) {
	lb, failure, err := s.resolvePublicKey(ctx, db, publicKey, false)
	if err != nil || failure != nil {
		return results.OperationResult[*LeaderboardInfo, error]{Failure: failure}, err
	}

	total, err := s.repo.CountScores(ctx, db, lb.ID)
	if err != nil {
		return results.OperationResult[*LeaderboardInfo, error]{}, err
	}

	info := &LeaderboardInfo{
		Name:        lb.Name,
		CreatedAt:   lb.CreatedAt.UTC(),
		TotalScores: total,
	}

	if total > 0 {
		top, err := s.repo.TopScore(ctx, db, lb.ID)
		switch {
		case err == nil:
			info.TopScore = &TopScore{PlayerName: top.PlayerName, Score: top.Score}
		case errors.Is(err, leaderboarddb.ErrNotFound):
			// Reset between the count and this read; report what is left.
			info.TotalScores = 0
		default:
			return results.OperationResult[*LeaderboardInfo, error]{}, err
		}
	}

	return results.SuccessResult[*LeaderboardInfo, error](info), nil
}

// resolvePublicKey loads a leaderboard by public key. An unknown key yields a
// domain failure rather than an error.
func (s *LeaderboardService) resolvePublicKey(ctx context.Context, db bun.IDB, publicKey string, lock bool) (*leaderboarddb.Leaderboard, *error, error) {
	if publicKey == "" {
		failure := ErrNotFound
		return nil, &failure, nil
	}

	var (
		lb  *leaderboarddb.Leaderboard
		err error
	)
	if lock {
		lb, err = s.repo.GetByPublicKeyForShare(ctx, db, publicKey)
	} else {
		lb, err = s.repo.GetByPublicKey(ctx, db, publicKey)
	}
	if err != nil {
		if errors.Is(err, leaderboarddb.ErrNotFound) {
			failure := ErrNotFound
			return nil, &failure, nil
		}
		return nil, nil, err
	}
	return lb, nil, nil
}

// redact keeps enough of a key to correlate log lines without leaking it.
func redact(key string) string {
	const keep = 8
	if len(key) <= keep {
		return key
	}
	return key[:keep] + "…"
}
