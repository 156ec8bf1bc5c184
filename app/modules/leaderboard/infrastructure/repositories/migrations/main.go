package leaderboardmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds every schema change for leaderboards and scores.
var Migrations = migrate.NewMigrations()
