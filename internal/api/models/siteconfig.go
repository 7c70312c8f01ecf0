package models

import "github.com/oliveraie/oliveraie/pkg/openinghours"

// HoursResponse carries the stored weekly schedule and display timezone.
type HoursResponse struct {
	Timezone string                      `json:"timezone"`
	Hours    openinghours.WeeklySchedule `json:"hours"`
}

// UpdateHoursRequest replaces the weekly schedule.
type UpdateHoursRequest struct {
	Hours openinghours.WeeklySchedule `json:"hours"`
}

// UpdateTimezoneRequest replaces the display timezone.
type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

// Validate checks the timezone request fields.
func (r *UpdateTimezoneRequest) Validate() []FieldError {
	if r.Timezone == "" {
		return []FieldError{{Field: "timezone", Message: "is required", Code: "REQUIRED"}}
	}
	return nil
}

// ScheduledClosingsResponse carries the stored scheduled closings.
type ScheduledClosingsResponse struct {
	Closings []openinghours.ScheduledClosing `json:"closings"`
}

// UpdateScheduledClosingsRequest replaces the scheduled closings list.
type UpdateScheduledClosingsRequest struct {
	Closings []openinghours.ScheduledClosing `json:"closings"`
}

// EmergencyClosingsResponse carries the stored emergency closings.
type EmergencyClosingsResponse struct {
	Closings []openinghours.EmergencyClosing `json:"closings"`
}

// UpdateEmergencyClosingsRequest replaces the emergency closings list.
type UpdateEmergencyClosingsRequest struct {
	Closings []openinghours.EmergencyClosing `json:"closings"`
}

// MessagesResponse carries the stored special messages.
type MessagesResponse struct {
	Messages []openinghours.SpecialMessage `json:"messages"`
}

// UpdateMessagesRequest replaces the special messages list.
type UpdateMessagesRequest struct {
	Messages []openinghours.SpecialMessage `json:"messages"`
}
