package leaderboarddb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// sqlState extracts the SQLSTATE code from either supported driver's error.
func sqlState(err error) string {
	var pgdErr pgdriver.Error
	if errors.As(err, &pgdErr) {
		return pgdErr.Field('C')
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	return ""
}

// translateError maps constraint violations to repository sentinels while
// keeping the driver error in the chain.
func translateError(err error) error {
	switch sqlState(err) {
	case sqlStateUniqueViolation:
		return errors.Join(ErrUniqueViolation, err)
	case sqlStateForeignKeyViolation:
		return errors.Join(ErrForeignKeyViolation, err)
	default:
		return err
	}
}
