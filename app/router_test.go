package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Black-And-White-Club/scoreboard-api/config"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPRouter_Health(t *testing.T) {
	r := newHTTPRouter(config.HTTPConfig{AllowedOrigins: []string{"*"}}, testLogger(), stubPinger{})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	r = newHTTPRouter(config.HTTPConfig{}, testLogger(), stubPinger{err: errors.New("down")})
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestNewHTTPRouter_PreflightOnAnyPath(t *testing.T) {
	r := newHTTPRouter(config.HTTPConfig{AllowedOrigins: []string{"*"}}, testLogger(), stubPinger{})

	req := httptest.NewRequest(http.MethodOptions, "/leaderboards/abc/scores", nil)
	req.Header.Set("Origin", "https://game.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHTTPRouter_RateLimit(t *testing.T) {
	r := newHTTPRouter(config.HTTPConfig{RateLimitRPS: 0.001, RateLimitBurst: 1}, testLogger(), stubPinger{})

	codes := []int{}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
