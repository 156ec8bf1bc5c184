package app

import (
	"log/slog"
	"net/http"
	"time"

	leaderboardhandlers "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/handlers"
	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

const requestTimeout = 30 * time.Second

// newHTTPRouter builds the root mux with the middleware shared by every
// module. CORS sits before routing so preflights for any path get answered.
func newHTTPRouter(cfg config.HTTPConfig, logger *slog.Logger, db leaderboardhandlers.Pinger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(leaderboardhandlers.CORSMiddleware(cfg.AllowedOrigins))

	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = int(cfg.RateLimitRPS) + 1
		}
		limiter := leaderboardhandlers.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), burst)
		r.Use(leaderboardhandlers.RateLimitMiddleware(limiter))
	}

	r.Get("/healthz", leaderboardhandlers.HealthHandler(db, logger))

	return r
}

// requestLogger logs one line per request with chi's request id.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.DebugContext(r.Context(), "HTTP request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
