package handler

import (
	"net/http"

	"github.com/oliveraie/oliveraie/internal/api/response"
	"github.com/oliveraie/oliveraie/internal/status"
)

// StatusHandler handles the public widget endpoints.
type StatusHandler struct {
	statusService *status.Service
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService *status.Service) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// GetStatus handles GET /v1/status - the live open/closed report.
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.statusService.Current(r.Context(), requestLocale(r))
	if err != nil {
		response.ServiceUnavailable(w, r, "status is temporarily unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, report)
}

// GetHours handles GET /v1/hours - the localized week overview.
func (h *StatusHandler) GetHours(w http.ResponseWriter, r *http.Request) {
	overview, err := h.statusService.WeekOverview(r.Context(), requestLocale(r))
	if err != nil {
		response.ServiceUnavailable(w, r, "hours are temporarily unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]interface{}{
		"days": overview,
	})
}

// requestLocale picks the display locale: explicit ?locale= wins, otherwise
// the Accept-Language header. Matching against supported locales happens
// downstream.
func requestLocale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	return r.Header.Get("Accept-Language")
}
