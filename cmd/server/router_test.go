package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"intake/internal/analysis"
	"intake/internal/platform/config"
	"intake/internal/platform/metrics"
	"intake/internal/wizard/service"
	"intake/internal/wizard/session"
)

func TestRouter(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Server{AllowedOrigins: []string{"https://apply.example"}, MaxUploadBytes: 1 << 20}
	svc := service.New(session.NewInMemoryStore(time.Hour), analysis.NewStub(), service.WithLogger(log))
	h := newRouter(cfg, log, svc, metrics.New(prometheus.NewRegistry()))

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cors preflight for the front end", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/sessions", nil)
		req.Header.Set("Origin", "https://apply.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "https://apply.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("session creation carries a request id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sessions", nil))
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}
