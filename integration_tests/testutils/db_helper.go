package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// TruncateTables truncates the specified tables
func TruncateTables(ctx context.Context, db bun.IDB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}
	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE"

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CleanLeaderboardIntegrationTables empties every scoreboard table.
func CleanLeaderboardIntegrationTables(ctx context.Context, db bun.IDB) error {
	return TruncateTables(ctx, db, "scores", "leaderboards")
}

// CountRows returns the number of rows in table, optionally filtered by where.
func CountRows(ctx context.Context, db bun.IDB, table, where string, args ...any) (int, error) {
	q := db.NewSelect().TableExpr(fmt.Sprintf(`"%s"`, table))
	if where != "" {
		q = q.Where(where, args...)
	}
	return q.Count(ctx)
}
