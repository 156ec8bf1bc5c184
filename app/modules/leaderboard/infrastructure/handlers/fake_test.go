package leaderboardhandlers

import (
	"context"
	"sync"
	"time"

	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	CreateLeaderboardFunc  func(ctx context.Context, name string) (*leaderboardservice.LeaderboardKeys, error)
	SubmitScoreFunc        func(ctx context.Context, publicKey, playerName string, score int64) error
	GetScoresFunc          func(ctx context.Context, req leaderboardservice.ScoresRequest) ([]leaderboardservice.RankedScore, error)
	GetLeaderboardInfoFunc func(ctx context.Context, publicKey string) (*leaderboardservice.LeaderboardInfo, error)
	DeleteLeaderboardFunc  func(ctx context.Context, leaderboardID, adminKey string) error
	ResetScoresFunc        func(ctx context.Context, leaderboardID, adminKey string) error
	ExportScoresFunc       func(ctx context.Context, publicKey string) ([]byte, error)
	RenderScoreChartFunc   func(ctx context.Context, publicKey string, limit *int) ([]byte, error)
}

func (f *FakeService) CreateLeaderboard(ctx context.Context, name string) (*leaderboardservice.LeaderboardKeys, error) {
	if f.CreateLeaderboardFunc != nil {
		return f.CreateLeaderboardFunc(ctx, name)
	}
	return &leaderboardservice.LeaderboardKeys{LeaderboardID: "lb-1", PublicKey: "pub-1", AdminKey: "admin-1"}, nil
}

func (f *FakeService) SubmitScore(ctx context.Context, publicKey, playerName string, score int64) error {
	if f.SubmitScoreFunc != nil {
		return f.SubmitScoreFunc(ctx, publicKey, playerName, score)
	}
	return nil
}

func (f *FakeService) GetScores(ctx context.Context, req leaderboardservice.ScoresRequest) ([]leaderboardservice.RankedScore, error) {
	if f.GetScoresFunc != nil {
		return f.GetScoresFunc(ctx, req)
	}
	return []leaderboardservice.RankedScore{}, nil
}

func (f *FakeService) GetLeaderboardInfo(ctx context.Context, publicKey string) (*leaderboardservice.LeaderboardInfo, error) {
	if f.GetLeaderboardInfoFunc != nil {
		return f.GetLeaderboardInfoFunc(ctx, publicKey)
	}
	return &leaderboardservice.LeaderboardInfo{Name: "fake", CreatedAt: time.Unix(0, 0).UTC()}, nil
}

func (f *FakeService) DeleteLeaderboard(ctx context.Context, leaderboardID, adminKey string) error {
	if f.DeleteLeaderboardFunc != nil {
		return f.DeleteLeaderboardFunc(ctx, leaderboardID, adminKey)
	}
	return nil
}

func (f *FakeService) ResetScores(ctx context.Context, leaderboardID, adminKey string) error {
	if f.ResetScoresFunc != nil {
		return f.ResetScoresFunc(ctx, leaderboardID, adminKey)
	}
	return nil
}

func (f *FakeService) ExportScores(ctx context.Context, publicKey string) ([]byte, error) {
	if f.ExportScoresFunc != nil {
		return f.ExportScoresFunc(ctx, publicKey)
	}
	return []byte("PK"), nil
}

func (f *FakeService) RenderScoreChart(ctx context.Context, publicKey string, limit *int) ([]byte, error) {
	if f.RenderScoreChartFunc != nil {
		return f.RenderScoreChartFunc(ctx, publicKey, limit)
	}
	return []byte("\x89PNG"), nil
}

var _ leaderboardservice.Service = (*FakeService)(nil)

// ------------------------
// Fake Pinger
// ------------------------

type FakePinger struct {
	Err error
}

func (f *FakePinger) PingContext(ctx context.Context) error {
	return f.Err
}

// ------------------------
// Recording Tracer
// ------------------------

type spanNameKey struct{}

// RecordingTracer records span names and tags the returned context with the
// name of the span it opened.
type RecordingTracer struct {
	trace.Tracer

	mu    sync.Mutex
	names []string
}

func NewRecordingTracer() *RecordingTracer {
	return &RecordingTracer{Tracer: noop.NewTracerProvider().Tracer("test")}
}

func (r *RecordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.mu.Lock()
	r.names = append(r.names, name)
	r.mu.Unlock()
	ctx, span := r.Tracer.Start(ctx, name, opts...)
	return context.WithValue(ctx, spanNameKey{}, name), span
}

func (r *RecordingTracer) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

func spanName(ctx context.Context) string {
	name, _ := ctx.Value(spanNameKey{}).(string)
	return name
}
