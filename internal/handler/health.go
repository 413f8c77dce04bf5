package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/database"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/save"
)

// readyzTimeout bounds all readiness checks together
const readyzTimeout = 2 * time.Second

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is one dependency /readyz probes
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// DatabaseCheck pings the postgres pool
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: "database", Check: pool.Ping}
}

// SaveStoreCheck reads the active slot. An empty slot still counts as ready.
func SaveStoreCheck(store save.Store, slot string) ReadinessCheck {
	return ReadinessCheck{Name: "saves", Check: func(ctx context.Context) error {
		_, err := store.Get(ctx, slot)
		if errors.Is(err, domain.ErrSaveNotFound) {
			return nil
		}
		return err
	}}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz runs every check and reports each by name. Any failure makes
// the whole service unavailable.
// @Summary Readiness check
// @Description Returns OK if the save store and database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		resp := HealthResponse{Status: statusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.FromContext(r.Context()).Error("Readiness check failed", "check", c.Name, "error", err)
				resp.Status = statusUnavailable
				resp.Checks[c.Name] = statusUnavailable
				continue
			}
			resp.Checks[c.Name] = statusOK
		}

		status := http.StatusOK
		if resp.Status != statusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
