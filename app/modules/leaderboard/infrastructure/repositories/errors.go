package leaderboarddb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUniqueViolation indicates an insert collided with a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation indicates a score referenced a leaderboard that
	// no longer exists.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
