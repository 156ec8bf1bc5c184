package leaderboardhandlerintegrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard"
	leaderboardhandlers "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/handlers"
	"github.com/Black-And-White-Club/scoreboard-api/app/observability"
	"github.com/Black-And-White-Club/scoreboard-api/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	if testing.Short() {
		t.Skip("integration tests need Docker; skipped with -short")
	}

	testEnvOnce.Do(func() {
		log.Println("Initializing leaderboard handler test environment...")
		testEnv, testEnvErr = testutils.NewTestEnvironment(t)
	})

	if testEnvErr != nil {
		t.Fatalf("Leaderboard handler test environment initialization failed: %v", testEnvErr)
	}
	return testEnv
}

// TestServer is an httptest server running the leaderboard module on a
// router configured like the production one.
type TestServer struct {
	*httptest.Server
	Data *testutils.TestDataGenerator
}

func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	env := GetTestEnv(t)

	resetCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := env.Reset(resetCtx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	obs := &observability.Observability{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:   noop.NewTracerProvider().Tracer("test_leaderboard_handlers"),
		Registry: prometheus.NewRegistry(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(leaderboardhandlers.CORSMiddleware(env.Config.HTTP.AllowedOrigins))

	if _, err := leaderboard.NewModule(env.Ctx, env.Config, obs, env.DB, r); err != nil {
		t.Fatalf("Failed to create leaderboard module: %v", err)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &TestServer{Server: srv, Data: testutils.NewTestDataGenerator()}
}

// Do sends a request with an optional JSON body and header pairs.
func (s *TestServer) Do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			buf, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(buf)
		}
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// decode reads a JSON response body into T.
func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

type keysResponse struct {
	LeaderboardID string `json:"leaderboard_id"`
	PublicKey     string `json:"public_key"`
	AdminKey      string `json:"admin_key"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *TestServer) createLeaderboard(t *testing.T) keysResponse {
	t.Helper()
	resp := s.Do(t, http.MethodPost, "/leaderboards", map[string]string{"name": s.Data.LeaderboardName()})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create leaderboard: status %d", resp.StatusCode)
	}
	return decode[keysResponse](t, resp)
}
