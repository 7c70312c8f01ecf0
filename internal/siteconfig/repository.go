package siteconfig

import (
	"context"
	"errors"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// ErrNotFound is returned when a configuration section has never been
// written. Callers substitute defaults; it is not a failure.
var ErrNotFound = errors.New("configuration section not found")

// Section keys under which configuration is persisted. Every backend uses
// the same JSON encoding per section, so the stored shape is
// backend-independent.
const (
	SectionHours             = "hours"
	SectionTimezone          = "timezone"
	SectionScheduledClosings = "scheduled_closings"
	SectionEmergencyClosings = "emergency_closings"
	SectionSpecialMessages   = "special_messages"
)

// Repository is the storage contract for site configuration: a simple
// get/set per section. Implementations must be safe for concurrent use.
type Repository interface {
	GetHours(ctx context.Context) (openinghours.WeeklySchedule, error)
	SaveHours(ctx context.Context, schedule openinghours.WeeklySchedule) error

	GetTimezone(ctx context.Context) (string, error)
	SaveTimezone(ctx context.Context, timezone string) error

	GetScheduledClosings(ctx context.Context) ([]openinghours.ScheduledClosing, error)
	SaveScheduledClosings(ctx context.Context, closings []openinghours.ScheduledClosing) error

	GetEmergencyClosings(ctx context.Context) ([]openinghours.EmergencyClosing, error)
	SaveEmergencyClosings(ctx context.Context, closings []openinghours.EmergencyClosing) error

	GetSpecialMessages(ctx context.Context) ([]openinghours.SpecialMessage, error)
	SaveSpecialMessages(ctx context.Context, messages []openinghours.SpecialMessage) error
}
