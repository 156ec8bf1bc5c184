package leaderboarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new leaderboard repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateLeaderboard inserts a new leaderboard.
func (r *Impl) CreateLeaderboard(ctx context.Context, db bun.IDB, lb *Leaderboard) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(lb).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert leaderboard: %w", translateError(err))
	}
	return nil
}

// NameExists reports whether a leaderboard already uses name.
func (r *Impl) NameExists(ctx context.Context, db bun.IDB, name string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Leaderboard)(nil)).
		Where("name = ?", name).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check leaderboard name: %w", err)
	}
	return exists, nil
}

// GetByPublicKey retrieves a leaderboard by its public key.
func (r *Impl) GetByPublicKey(ctx context.Context, db bun.IDB, publicKey string) (*Leaderboard, error) {
	return r.getByPublicKey(ctx, db, publicKey, false)
}

// GetByPublicKeyForShare retrieves a leaderboard and locks its row FOR SHARE.
func (r *Impl) GetByPublicKeyForShare(ctx context.Context, db bun.IDB, publicKey string) (*Leaderboard, error) {
	return r.getByPublicKey(ctx, db, publicKey, true)
}

func (r *Impl) getByPublicKey(ctx context.Context, db bun.IDB, publicKey string, lock bool) (*Leaderboard, error) {
	db = r.resolveDB(db)
	lb := new(Leaderboard)
	q := db.NewSelect().
		Model(lb).
		Where("public_key = ?", publicKey)
	if lock {
		q = q.For("SHARE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard by public key: %w", err)
	}
	return lb, nil
}

// GetByIDAndAdminKeyHash retrieves a leaderboard only when id and hash both match.
func (r *Impl) GetByIDAndAdminKeyHash(ctx context.Context, db bun.IDB, id, adminKeyHash string) (*Leaderboard, error) {
	db = r.resolveDB(db)
	lb := new(Leaderboard)
	err := db.NewSelect().
		Model(lb).
		Where("id = ?", id).
		Where("admin_key_hash = ?", adminKeyHash).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard by id: %w", err)
	}
	return lb, nil
}

// DeleteLeaderboard removes a leaderboard; the FK cascade removes its scores.
func (r *Impl) DeleteLeaderboard(ctx context.Context, db bun.IDB, id string) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Leaderboard)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete leaderboard: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
