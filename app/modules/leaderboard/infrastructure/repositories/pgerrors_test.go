package leaderboarddb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantKeep bool
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			wantIs:   ErrUniqueViolation,
			wantKeep: true,
		},
		{
			name:     "wrapped foreign key violation",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}),
			wantIs:   ErrForeignKeyViolation,
			wantKeep: true,
		},
		{
			name: "other sql state untouched",
			err:  &pgconn.PgError{Code: "40001"},
		},
		{
			name: "plain error untouched",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.wantIs == nil {
				assert.Equal(t, tt.err, got)
				assert.NotErrorIs(t, got, ErrUniqueViolation)
				assert.NotErrorIs(t, got, ErrForeignKeyViolation)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
			var pgErr *pgconn.PgError
			assert.Equal(t, tt.wantKeep, errors.As(got, &pgErr))
		})
	}
}
