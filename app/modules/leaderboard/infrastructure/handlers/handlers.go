package leaderboardhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// PublicKeyParam and LeaderboardIDParam are the chi URL parameters the
	// router must declare.
	PublicKeyParam     = "public_key"
	LeaderboardIDParam = "leaderboard_id"

	// AdminKeyHeader carries the admin key on destructive requests.
	// AdminKeyHeaderAlias is accepted for clients that cannot send X- headers.
	AdminKeyHeader      = "X-Admin-Key"
	AdminKeyHeaderAlias = "Admin-Key"
)

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(
	service leaderboardservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// startSpan opens a handler span and carries it on the request context.
func (h *LeaderboardHandlers) startSpan(r *http.Request, name string) (*http.Request, trace.Span) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers."+name)
	return r.WithContext(ctx), span
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeServiceError maps service errors onto status codes. Anything that is
// not a domain failure is logged and hidden behind a 500.
func (h *LeaderboardHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, leaderboardservice.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Leaderboard not found")
	case errors.Is(err, leaderboardservice.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, leaderboardservice.ErrConflict):
		writeDetail(w, http.StatusConflict, "Leaderboard name already exists")
	case errors.Is(err, leaderboardservice.ErrValidation):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		trace.SpanFromContext(r.Context()).RecordError(err)
		h.logger.ErrorContext(r.Context(), "Request failed",
			"operation", operation,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// adminKey reads the admin key from either accepted header.
func adminKey(r *http.Request) string {
	if key := r.Header.Get(AdminKeyHeader); key != "" {
		return key
	}
	return r.Header.Get(AdminKeyHeaderAlias)
}

func publicKey(r *http.Request) string {
	return chi.URLParam(r, PublicKeyParam)
}

func leaderboardID(r *http.Request) string {
	return chi.URLParam(r, LeaderboardIDParam)
}
