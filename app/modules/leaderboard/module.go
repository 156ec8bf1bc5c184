package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/scoreboard-api/app/observability"
	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/handlers"
	leaderboardmetrics "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/metrics"
	leaderboarddb "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/repositories"
	leaderboardrouter "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/router"
	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the leaderboard module.
type Module struct {
	service  leaderboardservice.Service
	handlers leaderboardhandlers.Handlers
	router   *leaderboardrouter.Router
	metrics  leaderboardmetrics.LeaderboardMetrics
	logger   *slog.Logger
}

// NewModule creates the leaderboard module and registers its routes on
// httpRouter when one is given.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer

	logger.InfoContext(ctx, "Initializing leaderboard module")

	metrics, err := leaderboardmetrics.NewPrometheus(obs.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register leaderboard metrics: %w", err)
	}

	repo := leaderboarddb.NewRepository(db)

	service := leaderboardservice.NewLeaderboardService(
		repo,
		logger,
		metrics,
		tracer,
		db,
		leaderboardservice.Config{
			DefaultLimit: cfg.Scoreboard.DefaultLimit,
			MaxLimit:     cfg.Scoreboard.MaxLimit,
		},
	)

	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, logger, tracer)
	router := leaderboardrouter.NewRouter(handlers)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(leaderboardhandlers.MetricsMiddleware(metrics))
			router.Configure(r)
		})
	}

	logger.InfoContext(ctx, "Leaderboard module initialized",
		"default_limit", cfg.Scoreboard.DefaultLimit,
		"max_limit", cfg.Scoreboard.MaxLimit,
	)

	return &Module{
		service:  service,
		handlers: handlers,
		router:   router,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// GetService returns the leaderboard service.
func (m *Module) GetService() leaderboardservice.Service {
	return m.service
}

// Close releases module resources. The database pool belongs to the app.
func (m *Module) Close() error {
	m.logger.Info("Leaderboard module stopped")
	return nil
}
