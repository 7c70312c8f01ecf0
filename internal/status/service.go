// Package status composes configuration snapshots with the opening-hours
// core into the user-facing live status of the restaurant. This is the
// presentation-layer caller of the core: it supplies a zone-adjusted clock
// and a locale-bound translator, and gets back plain data to render.
package status

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/oliveraie/oliveraie/internal/i18n"
	"github.com/oliveraie/oliveraie/internal/siteconfig"
	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// DefaultOpeningSoonWindow is how far ahead, in minutes, the badge switches
// to "opens in N minutes".
const DefaultOpeningSoonWindow = 60

// ServiceConfig holds configuration for the status service.
type ServiceConfig struct {
	Config *siteconfig.Service
	Logger zerolog.Logger

	// OpeningSoonWindowMinutes overrides DefaultOpeningSoonWindow when > 0.
	OpeningSoonWindowMinutes int
}

// Service resolves the live status of the establishment.
type Service struct {
	config     *siteconfig.Service
	logger     zerolog.Logger
	soonWindow int
}

// NewService creates a new status service.
func NewService(cfg ServiceConfig) *Service {
	window := cfg.OpeningSoonWindowMinutes
	if window <= 0 {
		window = DefaultOpeningSoonWindow
	}
	return &Service{
		config:     cfg.Config,
		logger:     cfg.Logger,
		soonWindow: window,
	}
}

// Report is the live status answer: whether the restaurant is open right
// now, the localized badge line, the closure responsible when one applies,
// and the surrounding context (next opening, upcoming closings, banners).
type Report struct {
	IsOpen           bool                            `json:"isOpen"`
	Badge            string                          `json:"badge"`
	Locale           string                          `json:"locale"`
	Timezone         string                          `json:"timezone"`
	GeneratedAt      time.Time                       `json:"generatedAt"`
	CurrentPeriod    *openinghours.Period            `json:"currentPeriod,omitempty"`
	NextPeriod       *openinghours.Period            `json:"nextPeriod,omitempty"`
	NextOpening      *openinghours.NextOpening       `json:"nextOpening,omitempty"`
	ActiveClosing    *openinghours.ScheduledClosing  `json:"activeClosing,omitempty"`
	ActiveEmergency  *openinghours.EmergencyClosing  `json:"activeEmergency,omitempty"`
	UpcomingClosings []openinghours.ScheduledClosing `json:"upcomingClosings,omitempty"`
	Messages         []openinghours.SpecialMessage   `json:"messages,omitempty"`
}

// upcomingLimit caps how many future closings a status report carries.
const upcomingLimit = 3

// Current resolves the live status for the given locale using the wall
// clock, adjusted to the configured timezone.
func (s *Service) Current(ctx context.Context, locale string) (*Report, error) {
	return s.At(ctx, locale, time.Now())
}

// At resolves the status as of an explicit instant. The instant is converted
// to the configured timezone before any schedule computation; the core
// itself never deals with zones.
func (s *Service) At(ctx context.Context, locale string, instant time.Time) (*Report, error) {
	snapshot, err := s.config.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(snapshot.Timezone)
	if err != nil {
		s.logger.Warn().Err(err).Str("timezone", snapshot.Timezone).Msg("bad configured timezone, using UTC")
		loc = time.UTC
	}
	now := instant.In(loc)

	resolved := i18n.Resolve(locale)
	translate := i18n.Translator(resolved)

	report := &Report{
		Locale:      resolved,
		Timezone:    snapshot.Timezone,
		GeneratedAt: now,
		Messages:    openinghours.ActiveMessages(snapshot.SpecialMessages, now),
		UpcomingClosings: openinghours.UpcomingClosings(
			snapshot.ScheduledClosings, now, upcomingLimit,
		),
	}

	// Closures override the weekly schedule; an emergency closing
	// overrides a scheduled one.
	if emergency := openinghours.ActiveEmergencyClosing(snapshot.EmergencyClosings, now); emergency != nil {
		report.ActiveEmergency = emergency
		report.Badge = translate(openinghours.KeyClosed, nil)
		return report, nil
	}
	if closing := openinghours.ActiveClosing(snapshot.ScheduledClosings, now); closing != nil {
		report.ActiveClosing = closing
		report.Badge = translate(openinghours.KeyClosed, nil)
		return report, nil
	}

	open, err := openinghours.IsOpenNow(snapshot.Hours, now)
	if err != nil {
		return nil, err
	}
	report.IsOpen = open

	day, _ := openinghours.DayHoursFor(snapshot.Hours, openinghours.DayKeyForDate(now))
	current, next, err := openinghours.CurrentAndNextPeriod(day, openinghours.TimeOfDayOf(now))
	if err != nil {
		return nil, err
	}
	report.CurrentPeriod = current
	report.NextPeriod = next

	report.NextOpening, err = openinghours.NextOpeningTime(snapshot.Hours, now)
	if err != nil {
		return nil, err
	}

	report.Badge, err = openinghours.StatusBadge(snapshot.Hours, now, s.soonWindow, translate)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// DayOverview is one row of the public opening-hours table, with times
// formatted for the requested locale.
type DayOverview struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	IsOpen  bool            `json:"isOpen"`
	Periods []DisplayPeriod `json:"periods"`
}

// DisplayPeriod pairs the raw period with locale-formatted display strings.
type DisplayPeriod struct {
	Open         openinghours.TimeOfDay `json:"open"`
	Close        openinghours.TimeOfDay `json:"close"`
	OpenDisplay  string                 `json:"openDisplay"`
	CloseDisplay string                 `json:"closeDisplay"`
}

// WeekOverview renders the full weekly schedule for display, Monday first.
func (s *Service) WeekOverview(ctx context.Context, locale string) ([]DayOverview, error) {
	snapshot, err := s.config.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	resolved := i18n.Resolve(locale)
	overview := make([]DayOverview, 0, 7)

	for _, key := range openinghours.DayKeys() {
		day, _ := openinghours.DayHoursFor(snapshot.Hours, key)
		row := DayOverview{Key: key, Label: day.Day, IsOpen: day.IsOpen, Periods: []DisplayPeriod{}}

		if day.IsOpen {
			for _, period := range day.Periods {
				openDisplay, err := openinghours.FormatTimeForLocale(period.Open, resolved)
				if err != nil {
					return nil, err
				}
				closeDisplay, err := openinghours.FormatTimeForLocale(period.Close, resolved)
				if err != nil {
					return nil, err
				}
				row.Periods = append(row.Periods, DisplayPeriod{
					Open:         period.Open,
					Close:        period.Close,
					OpenDisplay:  openDisplay,
					CloseDisplay: closeDisplay,
				})
			}
		}
		overview = append(overview, row)
	}
	return overview, nil
}
