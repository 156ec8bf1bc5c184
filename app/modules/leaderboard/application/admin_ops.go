package leaderboardservice

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/scoreboard-api/app/shared/results"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// DeleteLeaderboard removes a leaderboard and all of its scores.
func (s *LeaderboardService) DeleteLeaderboard(ctx context.Context, leaderboardID, adminKey string) error {
	_, err := execute(s, ctx, "DeleteLeaderboard", leaderboardID, func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		lb, failure, err := s.authorizeAdmin(ctx, db, leaderboardID, adminKey)
		if err != nil || failure != nil {
			return results.OperationResult[struct{}, error]{Failure: failure}, err
		}

		if err := s.repo.DeleteLeaderboard(ctx, db, lb.ID); err != nil {
			if errors.Is(err, leaderboarddb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrForbidden), nil
			}
			return results.OperationResult[struct{}, error]{}, err
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

// ResetScores removes every score of a leaderboard but keeps the leaderboard.
func (s *LeaderboardService) ResetScores(ctx context.Context, leaderboardID, adminKey string) error {
	_, err := execute(s, ctx, "ResetScores", leaderboardID, func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		lb, failure, err := s.authorizeAdmin(ctx, db, leaderboardID, adminKey)
		if err != nil || failure != nil {
			return results.OperationResult[struct{}, error]{Failure: failure}, err
		}

		removed, err := s.repo.DeleteScores(ctx, db, lb.ID)
		if err != nil {
			return results.OperationResult[struct{}, error]{}, err
		}
		s.logger.InfoContext(ctx, "Scores reset",
			"leaderboard_id", lb.ID,
			"removed", removed,
		)
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	})
	return err
}

// authorizeAdmin permits an admin operation only when adminKey belongs to the
// leaderboard with leaderboardID. Any mismatch, including an unknown id, is
// reported as ErrForbidden.
func (s *LeaderboardService) authorizeAdmin(ctx context.Context, db bun.IDB, leaderboardID, adminKey string) (*leaderboarddb.Leaderboard, *error, error) {
	forbidden := func() (*leaderboarddb.Leaderboard, *error, error) {
		failure := ErrForbidden
		return nil, &failure, nil
	}

	if leaderboardID == "" || adminKey == "" {
		return forbidden()
	}

	lb, err := s.repo.GetByIDAndAdminKeyHash(ctx, db, leaderboardID, hashAdminKey(adminKey))
	if err != nil {
		if errors.Is(err, leaderboarddb.ErrNotFound) {
			return forbidden()
		}
		return nil, nil, err
	}
	return lb, nil, nil
}
