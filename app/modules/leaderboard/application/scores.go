package leaderboardservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/scoreboard-api/app/shared/results"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// SubmitScore records a score on the leaderboard behind publicKey.
func (s *LeaderboardService) SubmitScore(ctx context.Context, publicKey, playerName string, score int64) error {
	_, err := execute(s, ctx, "SubmitScore", redact(publicKey), func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
		return s.submitScoreLogic(ctx, db, publicKey, playerName, score)
	})
	if err == nil {
		s.metrics.RecordScoreSubmitted(ctx)
	}
	return err
}

func (s *LeaderboardService) submitScoreLogic(ctx context.Context, db bun.IDB, publicKey, playerName string, score int64) (results.OperationResult[struct{}, error], error) {
	// The share lock keeps a concurrent delete from committing until this
	// insert is done.
	lb, failure, err := s.resolvePublicKey(ctx, db, publicKey, true)
	if err != nil || failure != nil {
		return results.OperationResult[struct{}, error]{Failure: failure}, err
	}

	row := &leaderboarddb.Score{
		LeaderboardID: lb.ID,
		PlayerName:    playerName,
		Score:         score,
		SubmittedAt:   s.timestamp(),
	}
	if err := s.repo.InsertScore(ctx, db, row); err != nil {
		if errors.Is(err, leaderboarddb.ErrForeignKeyViolation) {
			return results.FailureResult[struct{}, error](ErrNotFound), nil
		}
		return results.OperationResult[struct{}, error]{}, err
	}

	return results.SuccessResult[struct{}, error](struct{}{}), nil
}

// GetScores returns a ranked listing. Ties keep the earliest submission first.
func (s *LeaderboardService) GetScores(ctx context.Context, req ScoresRequest) ([]RankedScore, error) {
	return execute(s, ctx, "GetScores", redact(req.PublicKey), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]RankedScore, error], error) {
		return s.getScoresLogic(ctx, db, req)
	})
}

func (s *LeaderboardService) getScoresLogic(ctx context.Context, db bun.IDB, req ScoresRequest) (results.OperationResult[[]RankedScore, error], error) {
	limit, err := s.effectiveLimit(req.Limit)
	if err != nil {
		return results.FailureResult[[]RankedScore, error](err), nil
	}

	since, err := parseSince(req.Since, s.now())
	if err != nil {
		return results.FailureResult[[]RankedScore, error](err), nil
	}

	lb, failure, err := s.resolvePublicKey(ctx, db, req.PublicKey, false)
	if err != nil || failure != nil {
		return results.OperationResult[[]RankedScore, error]{Failure: failure}, err
	}
	if limit == 0 {
		return results.SuccessResult[[]RankedScore, error]([]RankedScore{}), nil
	}

	rows, err := s.repo.ListScores(ctx, db, leaderboarddb.ScoreQuery{
		LeaderboardID: lb.ID,
		Order:         parseOrder(req.Order),
		Limit:         limit,
		Since:         since,
	})
	if err != nil {
		return results.OperationResult[[]RankedScore, error]{}, err
	}

	return results.SuccessResult[[]RankedScore, error](rankScores(rows)), nil
}

// effectiveLimit applies the default when no limit was given and clamps to
// the maximum.
func (s *LeaderboardService) effectiveLimit(limit *int) (int, error) {
	switch {
	case limit == nil:
		return s.config.DefaultLimit, nil
	case *limit < 0:
		return 0, fmt.Errorf("%w: limit must not be negative", ErrValidation)
	case *limit > s.config.MaxLimit:
		return s.config.MaxLimit, nil
	default:
		return *limit, nil
	}
}

// parseOrder maps "desc" (or no order) to descending and anything else to ascending.
func parseOrder(order string) leaderboarddb.ScoreOrder {
	if order == "" || order == OrderDesc {
		return leaderboarddb.Descending
	}
	return leaderboarddb.Ascending
}

// rankScores assigns 1-based ranks in the order the rows were returned.
func rankScores(rows []leaderboarddb.Score) []RankedScore {
	ranked := make([]RankedScore, len(rows))
	for i, row := range rows {
		ranked[i] = RankedScore{
			Rank:        i + 1,
			PlayerName:  row.PlayerName,
			Score:       row.Score,
			SubmittedAt: row.SubmittedAt.UTC(),
		}
	}
	return ranked
}
