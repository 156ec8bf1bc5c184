package leaderboardintegrationtests

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
	leaderboardmetrics "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/metrics"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/scoreboard-api/integration_tests/testutils"
)

// Global variables for the test environment, initialized once.
var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

type TestDeps struct {
	Ctx     context.Context
	Repo    leaderboarddb.Repository
	BunDB   *bun.DB
	Service leaderboardservice.Service
	Data    *testutils.TestDataGenerator
}

func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	if testing.Short() {
		t.Skip("integration tests need Docker; skipped with -short")
	}

	testEnvOnce.Do(func() {
		log.Println("Initializing leaderboard test environment...")
		env, err := testutils.NewTestEnvironment(t)
		if err != nil {
			testEnvErr = err
			log.Printf("Failed to set up test environment: %v", err)
		} else {
			log.Println("Leaderboard test environment initialized successfully.")
			testEnv = env
		}
	})

	if testEnvErr != nil {
		t.Fatalf("Leaderboard test environment initialization failed: %v", testEnvErr)
	}

	if testEnv == nil {
		t.Fatalf("Leaderboard test environment not initialized")
	}

	return testEnv
}

func SetupTestLeaderboardService(t *testing.T) TestDeps {
	t.Helper()

	env := GetTestEnv(t)

	resetCtx, resetCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer resetCancel()
	if err := env.Reset(resetCtx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	repo := leaderboarddb.NewRepository(env.DB)

	service := leaderboardservice.NewLeaderboardService(
		repo,
		env.Logger,
		leaderboardmetrics.NewNoop(),
		noop.NewTracerProvider().Tracer("test_leaderboard_service"),
		env.DB,
		leaderboardservice.Config{
			DefaultLimit: env.Config.Scoreboard.DefaultLimit,
			MaxLimit:     env.Config.Scoreboard.MaxLimit,
		},
	)

	return TestDeps{
		Ctx:     env.Ctx,
		Repo:    repo,
		BunDB:   env.DB,
		Service: service,
		Data:    testutils.NewTestDataGenerator(),
	}
}

func intPtr(i int) *int {
	return &i
}

// countScores counts score rows of a leaderboard straight from the table.
func countScores(t *testing.T, deps TestDeps, leaderboardID string) int {
	t.Helper()
	n, err := testutils.CountRows(deps.Ctx, deps.BunDB, "scores", "leaderboard_id = ?", leaderboardID)
	if err != nil {
		t.Fatalf("count scores: %v", err)
	}
	return n
}
