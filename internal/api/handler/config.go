package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oliveraie/oliveraie/internal/api/models"
	"github.com/oliveraie/oliveraie/internal/api/response"
	"github.com/oliveraie/oliveraie/internal/siteconfig"
)

// ConfigHandler handles the admin configuration endpoints.
type ConfigHandler struct {
	configService *siteconfig.Service
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService *siteconfig.Service) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// GetHours handles GET /v1/admin/hours.
func (h *ConfigHandler) GetHours(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.configService.Snapshot(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, r, "configuration storage is unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, models.HoursResponse{
		Timezone: snapshot.Timezone,
		Hours:    snapshot.Hours,
	})
}

// UpdateHours handles PUT /v1/admin/hours.
func (h *ConfigHandler) UpdateHours(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if err := h.configService.UpdateHours(r.Context(), req.Hours); err != nil {
		h.writeUpdateError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// UpdateTimezone handles PUT /v1/admin/timezone.
func (h *ConfigHandler) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTimezoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.BadRequest(w, r, "validation error", errs)
		return
	}

	if err := h.configService.UpdateTimezone(r.Context(), req.Timezone); err != nil {
		h.writeUpdateError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// GetScheduledClosings handles GET /v1/admin/closings/scheduled.
func (h *ConfigHandler) GetScheduledClosings(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.configService.Snapshot(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, r, "configuration storage is unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, models.ScheduledClosingsResponse{Closings: snapshot.ScheduledClosings})
}

// UpdateScheduledClosings handles PUT /v1/admin/closings/scheduled.
func (h *ConfigHandler) UpdateScheduledClosings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduledClosingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if err := h.configService.UpdateScheduledClosings(r.Context(), req.Closings); err != nil {
		h.writeUpdateError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// GetEmergencyClosings handles GET /v1/admin/closings/emergency.
func (h *ConfigHandler) GetEmergencyClosings(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.configService.Snapshot(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, r, "configuration storage is unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, models.EmergencyClosingsResponse{Closings: snapshot.EmergencyClosings})
}

// UpdateEmergencyClosings handles PUT /v1/admin/closings/emergency.
func (h *ConfigHandler) UpdateEmergencyClosings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEmergencyClosingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if err := h.configService.UpdateEmergencyClosings(r.Context(), req.Closings); err != nil {
		h.writeUpdateError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// GetMessages handles GET /v1/admin/messages.
func (h *ConfigHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.configService.Snapshot(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, r, "configuration storage is unavailable")
		return
	}
	response.JSON(w, r, http.StatusOK, models.MessagesResponse{Messages: snapshot.SpecialMessages})
}

// UpdateMessages handles PUT /v1/admin/messages.
func (h *ConfigHandler) UpdateMessages(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if err := h.configService.UpdateSpecialMessages(r.Context(), req.Messages); err != nil {
		h.writeUpdateError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// writeUpdateError maps service errors from configuration writes to HTTP
// responses.
func (h *ConfigHandler) writeUpdateError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *siteconfig.ValidationError
	if errors.As(err, &validationErr) {
		fieldErrors := make([]models.FieldError, len(validationErr.Errors))
		for i, fe := range validationErr.Errors {
			fieldErrors[i] = models.FieldError{Field: fe.Field, Message: fe.Message}
		}
		response.BadRequest(w, r, "validation error", fieldErrors)
		return
	}
	response.ServiceUnavailable(w, r, "configuration storage is unavailable")
}
