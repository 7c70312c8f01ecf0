package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/oliveraie/oliveraie/internal/analytics"
	"github.com/oliveraie/oliveraie/internal/api/models"
	"github.com/oliveraie/oliveraie/internal/api/response"
)

// AnalyticsHandler handles QR campaign endpoints.
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	redirectURL      string
	logger           zerolog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler. redirectURL is where
// scanned QR codes land, typically the public site.
func NewAnalyticsHandler(analyticsService *analytics.Service, redirectURL string, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		redirectURL:      redirectURL,
		logger:           logger,
	}
}

// Scan handles GET /v1/qr/{campaign} - records the scan and redirects to
// the public site. A failed write never blocks the redirect; the visitor
// holding the phone comes first.
func (h *AnalyticsHandler) Scan(w http.ResponseWriter, r *http.Request) {
	campaign := chi.URLParam(r, "campaign")

	if err := h.analyticsService.RecordScan(r.Context(), campaign, time.Now()); err != nil {
		if errors.Is(err, analytics.ErrInvalidCampaign) {
			response.NotFound(w, r, "unknown campaign")
			return
		}
		h.logger.Warn().Err(err).Str("campaign", campaign).Msg("failed to record scan")
	}

	http.Redirect(w, r, h.redirectURL, http.StatusFound)
}

// ListCampaigns handles GET /v1/admin/analytics/campaigns.
func (h *AnalyticsHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.analyticsService.Campaigns(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, r, "analytics storage is unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, models.CampaignsResponse{Campaigns: campaigns})
}

// GetCampaignSummary handles GET /v1/admin/analytics/campaigns/{campaign}.
// The optional days query parameter sizes the per-day window.
func (h *AnalyticsHandler) GetCampaignSummary(w http.ResponseWriter, r *http.Request) {
	campaign := chi.URLParam(r, "campaign")

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			response.BadRequest(w, r, "days must be an integer between 1 and 90", nil)
			return
		}
		days = parsed
	}

	summary, err := h.analyticsService.Summary(r.Context(), campaign, days, time.Now())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidCampaign) {
			response.NotFound(w, r, "unknown campaign")
			return
		}
		response.ServiceUnavailable(w, r, "analytics storage is unavailable")
		return
	}

	response.JSON(w, r, http.StatusOK, models.CampaignSummaryResponse{
		Campaign: summary.Campaign,
		Total:    summary.Total,
		Days:     summary.Days,
	})
}
