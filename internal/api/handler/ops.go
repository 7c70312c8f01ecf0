// Package handler provides HTTP handlers for the L'Oliveraie API.
package handler

import (
	"net/http"
	"time"

	"github.com/oliveraie/oliveraie/internal/api/models"
	"github.com/oliveraie/oliveraie/internal/api/response"
	"github.com/oliveraie/oliveraie/internal/siteconfig"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version       string
	buildTime     string
	configService *siteconfig.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, configService *siteconfig.Service) *OpsHandler {
	return &OpsHandler{
		version:       version,
		buildTime:     buildTime,
		configService: configService,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready when a configuration snapshot can be produced, from
// storage or from the stale cache.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	readiness := models.Readiness{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	check := models.DependencyCheck{Name: "config-store", Status: models.HealthStatusOK}
	if _, err := h.configService.Snapshot(r.Context()); err != nil {
		check.Status = models.HealthStatusFail
		check.Detail = err.Error()
		readiness.Status = models.HealthStatusFail
	}
	readiness.Checks = append(readiness.Checks, check)

	status := http.StatusOK
	if readiness.Status == models.HealthStatusFail {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, r, status, readiness)
}
