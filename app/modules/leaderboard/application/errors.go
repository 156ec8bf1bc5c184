package leaderboardservice

import "errors"

var (
	// ErrNotFound is returned when a public key matches no leaderboard.
	ErrNotFound = errors.New("leaderboard not found")

	// ErrForbidden is returned when an admin key does not match the leaderboard id.
	// Unknown ids are reported the same way.
	ErrForbidden = errors.New("unauthorized")

	// ErrConflict is returned when a leaderboard name is already taken.
	ErrConflict = errors.New("leaderboard name already exists")

	// ErrValidation is wrapped by every input validation failure.
	ErrValidation = errors.New("validation error")
)
