// Package siteconfig persists and serves the restaurant's editable
// configuration: weekly opening hours, scheduled and emergency closings,
// special messages, and the display timezone. The opening-hours core never
// touches storage; it consumes immutable snapshots produced here.
package siteconfig

import (
	"time"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// Snapshot is an immutable view of the full site configuration, valid for
// the duration of a set of queries. Callers fetch one snapshot and run any
// number of core computations against it.
type Snapshot struct {
	Timezone          string                          `json:"timezone"`
	Hours             openinghours.WeeklySchedule     `json:"hours"`
	ScheduledClosings []openinghours.ScheduledClosing `json:"scheduledClosings"`
	EmergencyClosings []openinghours.EmergencyClosing `json:"emergencyClosings"`
	SpecialMessages   []openinghours.SpecialMessage   `json:"specialMessages"`
	FetchedAt         time.Time                       `json:"fetchedAt"`
}

// DefaultTimezone applies when no timezone has been configured.
const DefaultTimezone = "Europe/Paris"

// DefaultSchedule returns the out-of-the-box weekly schedule used before an
// administrator has saved one: closed Mondays, lunch and dinner service the
// rest of the week, lunch only on Sundays.
func DefaultSchedule() openinghours.WeeklySchedule {
	split := []openinghours.Period{
		{Open: "12:00", Close: "14:30"},
		{Open: "19:00", Close: "22:30"},
	}
	return openinghours.WeeklySchedule{
		"monday":    {Day: "Lundi", IsOpen: false},
		"tuesday":   {Day: "Mardi", IsOpen: true, Periods: split},
		"wednesday": {Day: "Mercredi", IsOpen: true, Periods: split},
		"thursday":  {Day: "Jeudi", IsOpen: true, Periods: split},
		"friday":    {Day: "Vendredi", IsOpen: true, Periods: split},
		"saturday":  {Day: "Samedi", IsOpen: true, Periods: split},
		"sunday":    {Day: "Dimanche", IsOpen: true, Periods: []openinghours.Period{{Open: "12:00", Close: "15:00"}}},
	}
}

// FieldError describes a validation failure on a specific field of a
// configuration write.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors of a rejected write.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0].Field + ": " + e.Errors[0].Message
	}
	return "validation failed"
}
