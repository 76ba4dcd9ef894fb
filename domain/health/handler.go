package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/contact"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/scheduler"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg       *config.Config
	emailCfg  *email.Config
	scheduler *scheduler.Scheduler
	forms     *contact.Registry
	startAt   time.Time

	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
}

// NewHandler creates a new health handler
func NewHandler(cfg *config.Config, emailCfg *email.Config, s *scheduler.Scheduler, forms *contact.Registry) *Handler {
	return &Handler{
		cfg:         cfg,
		emailCfg:    emailCfg,
		scheduler:   s,
		forms:       forms,
		startAt:     time.Now(),
		getMemStats: mem.VirtualMemoryWithContext,
		getLoadAvg:  load.AvgWithContext,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health. An unconfigured email provider
// degrades the service but does not fail it: the page still renders.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	checks := map[string]Check{
		"scheduler": {Status: "healthy"},
		"email":     {Status: "healthy", Message: h.emailCfg.Provider},
	}

	overall := "healthy"
	statusCode := http.StatusOK

	if !h.scheduler.IsRunning() {
		checks["scheduler"] = Check{Status: "unhealthy", Message: "scheduler not running"}
		overall = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	if !h.emailCfg.IsConfigured() {
		checks["email"] = Check{Status: "degraded", Message: h.emailCfg.Provider + " is not configured"}
		if overall == "healthy" {
			overall = "degraded"
		}
	}

	return c.JSON(statusCode, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	})
}

// Healthz is the liveness probe
// GET /healthz
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready is the readiness probe
// GET /ready
func (h *Handler) Ready(c echo.Context) error {
	if !h.scheduler.IsRunning() {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Scheduler not running",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime and host information outside production
// GET /debug
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	var rt runtime.MemStats
	runtime.ReadMemStats(&rt)

	host := map[string]any{"num_cpu": runtime.NumCPU()}
	if vm, err := h.getMemStats(ctx); err == nil {
		host["memory_total_mb"] = vm.Total / 1024 / 1024
		host["memory_used_percent"] = vm.UsedPercent
	}
	if avg, err := h.getLoadAvg(ctx); err == nil {
		host["load_1"] = avg.Load1
		host["load_5"] = avg.Load5
		host["load_15"] = avg.Load15
	}

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       rt.Alloc / 1024 / 1024,
			"total_alloc_mb": rt.TotalAlloc / 1024 / 1024,
			"sys_mb":         rt.Sys / 1024 / 1024,
			"num_gc":         rt.NumGC,
		},
		"host":  host,
		"tasks": h.scheduler.TaskInfo(),
		"contact": map[string]any{
			"active_forms":   h.forms.Len(),
			"email_provider": h.emailCfg.Provider,
		},
	})
}
