package leaderboardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/scoreboard-api/app/shared/results"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Scores"

// ExportScores renders every score of a leaderboard, best first, as an XLSX workbook.
func (s *LeaderboardService) ExportScores(ctx context.Context, publicKey string) ([]byte, error) {
	ranked, err := execute(s, ctx, "ExportScores", redact(publicKey), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]RankedScore, error], error) {
		return s.topScoresLogic(ctx, db, publicKey, nil)
	})
	if err != nil {
		return nil, err
	}
	return buildScoresWorkbook(ranked)
}

// topScoresLogic lists up to limit scores in descending order; a nil limit lists all.
func (s *LeaderboardService) topScoresLogic(ctx context.Context, db bun.IDB, publicKey string, limit *int) (results.OperationResult[[]RankedScore, error], error) {
	lb, failure, err := s.resolvePublicKey(ctx, db, publicKey, false)
	if err != nil || failure != nil {
		return results.OperationResult[[]RankedScore, error]{Failure: failure}, err
	}

	query := leaderboarddb.ScoreQuery{
		LeaderboardID: lb.ID,
		Order:         leaderboarddb.Descending,
	}
	if limit != nil {
		if *limit == 0 {
			return results.SuccessResult[[]RankedScore, error]([]RankedScore{}), nil
		}
		query.Limit = *limit
	}

	rows, err := s.repo.ListScores(ctx, db, query)
	if err != nil {
		return results.OperationResult[[]RankedScore, error]{}, err
	}
	return results.SuccessResult[[]RankedScore, error](rankScores(rows)), nil
}

func buildScoresWorkbook(ranked []RankedScore) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Rank", "Player", "Score", "Submitted At"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range ranked {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{r.Rank, r.PlayerName, r.Score, r.SubmittedAt.Format(time.RFC3339)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "B", "B", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "D", "D", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
