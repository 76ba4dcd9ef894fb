package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/contact"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/scheduler"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
)

func newTestHandler(t *testing.T, env string, emailCfg *email.Config, running bool) (*echo.Echo, *Handler) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Environment: env, Contact: config.ContactConfig{FormTTL: time.Hour}}
	s := scheduler.NewScheduler(log)
	if running {
		require.NoError(t, s.Start(context.Background()))
		t.Cleanup(func() { _ = s.Stop(context.Background()) })
	}
	forms := contact.NewRegistry(email.NewNoopSender(log), cfg, log)

	h := NewHandler(cfg, emailCfg, s, forms)
	h.getMemStats = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 8 << 30, UsedPercent: 42.5}, nil
	}
	h.getLoadAvg = func(context.Context) (*load.AvgStat, error) {
		return nil, errors.New("not supported")
	}

	e := echo.New()
	RegisterRoutes(e, h)
	return e, h
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	noop := &email.Config{Provider: config.ProviderNoop}
	unconfigured := &email.Config{Provider: config.ProviderEmailJS}

	tests := []struct {
		name       string
		emailCfg   *email.Config
		running    bool
		wantCode   int
		wantStatus string
	}{
		{"healthy", noop, true, http.StatusOK, "healthy"},
		{"email not configured", unconfigured, true, http.StatusOK, "degraded"},
		{"scheduler stopped", noop, false, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestHandler(t, "local", tt.emailCfg, tt.running)

			rec := get(e, "/health")
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Contains(t, resp.Checks, "scheduler")
			assert.Contains(t, resp.Checks, "email")
		})
	}
}

func TestHealthzAndReady(t *testing.T) {
	e, _ := newTestHandler(t, "local", &email.Config{Provider: config.ProviderNoop}, true)

	rec := get(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = get(e, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	e, _ = newTestHandler(t, "local", &email.Config{Provider: config.ProviderNoop}, false)
	assert.Equal(t, http.StatusServiceUnavailable, get(e, "/ready").Code)
}

func TestDebug(t *testing.T) {
	e, _ := newTestHandler(t, "local", &email.Config{Provider: config.ProviderNoop}, true)

	rec := get(e, "/debug")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	host := body["host"].(map[string]any)
	assert.Equal(t, float64(8192), host["memory_total_mb"])
	assert.Equal(t, 42.5, host["memory_used_percent"])
	assert.NotContains(t, host, "load_1")
	assert.Equal(t, "noop", body["contact"].(map[string]any)["email_provider"])

	e, _ = newTestHandler(t, "production", &email.Config{Provider: config.ProviderNoop}, true)
	assert.Equal(t, http.StatusNotFound, get(e, "/debug").Code)
}

func TestMetrics(t *testing.T) {
	e, _ := newTestHandler(t, "local", &email.Config{Provider: config.ProviderNoop}, true)

	rec := get(e, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contact_forms_active")
}
