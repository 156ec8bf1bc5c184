package leaderboardservice

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	leaderboardmetrics "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/metrics"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.opentelemetry.io/otel/trace/noop"
)

// txRecorder is a database/sql driver that only counts transaction outcomes.
type txRecorder struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (d *txRecorder) Open(string) (driver.Conn, error)            { return &txRecorderConn{d: d}, nil }
func (d *txRecorder) Connect(context.Context) (driver.Conn, error) { return &txRecorderConn{d: d}, nil }
func (d *txRecorder) Driver() driver.Driver                        { return d }

func (d *txRecorder) counts() (commits, rollbacks int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.commits, d.rollbacks
}

type txRecorderConn struct{ d *txRecorder }

func (c *txRecorderConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("statements not supported")
}
func (c *txRecorderConn) Close() error              { return nil }
func (c *txRecorderConn) Begin() (driver.Tx, error) { return &txRecorderTx{d: c.d}, nil }

type txRecorderTx struct{ d *txRecorder }

func (t *txRecorderTx) Commit() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.commits++
	return nil
}

func (t *txRecorderTx) Rollback() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.rollbacks++
	return nil
}

func newTxTestService(t *testing.T, repo leaderboarddb.Repository) (*LeaderboardService, *txRecorder) {
	t.Helper()
	rec := &txRecorder{}
	db := bun.NewDB(sql.OpenDB(rec), pgdialect.New())
	t.Cleanup(func() { db.Close() })

	svc := NewLeaderboardService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		leaderboardmetrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		db,
		Config{DefaultLimit: 10, MaxLimit: 100},
	)
	svc.now = func() time.Time { return fixedNow }
	return svc, rec
}

func TestRunInTx_CommitsOnlySuccess(t *testing.T) {
	tests := []struct {
		name          string
		createErr     error
		wantErrIs     error
		wantCommits   int
		wantRollbacks int
	}{
		{
			name:        "success commits",
			wantCommits: 1,
		},
		{
			name:          "unique violation rolls back and reports conflict",
			createErr:     leaderboarddb.ErrUniqueViolation,
			wantErrIs:     ErrConflict,
			wantRollbacks: 1,
		},
		{
			name:          "infrastructure error rolls back",
			createErr:     errors.New("connection reset"),
			wantRollbacks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeLeaderboardRepo()
			repo.CreateLeaderboardFunc = func(ctx context.Context, db bun.IDB, lb *leaderboarddb.Leaderboard) error {
				_, inTx := db.(bun.Tx)
				assert.True(t, inTx, "repository must run inside the transaction")
				return tt.createErr
			}
			svc, rec := newTxTestService(t, repo)

			keys, err := svc.CreateLeaderboard(context.Background(), "Jam Cup")
			switch {
			case tt.wantErrIs != nil:
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.NotErrorIs(t, err, errRollback)
			case tt.createErr != nil:
				require.ErrorIs(t, err, tt.createErr)
			default:
				require.NoError(t, err)
				assert.NotNil(t, keys)
			}

			commits, rollbacks := rec.counts()
			assert.Equal(t, tt.wantCommits, commits)
			assert.Equal(t, tt.wantRollbacks, rollbacks)
		})
	}
}

func TestRunInTx_ForbiddenAdminOperationRollsBack(t *testing.T) {
	repo := NewFakeLeaderboardRepo()
	repo.GetByIDAndAdminKeyHashFunc = func(ctx context.Context, db bun.IDB, id, adminKeyHash string) (*leaderboarddb.Leaderboard, error) {
		return nil, leaderboarddb.ErrNotFound
	}
	svc, rec := newTxTestService(t, repo)

	err := svc.ResetScores(context.Background(), "lb-1", "wrong")
	require.ErrorIs(t, err, ErrForbidden)

	commits, rollbacks := rec.counts()
	assert.Zero(t, commits)
	assert.Equal(t, 1, rollbacks)
}
