package openinghours

import (
	"strconv"
	"time"
)

// Translation keys used by the status formatter. The catalog behind the
// TranslateFunc must provide these.
const (
	KeyClosed           = "badge.closed"
	KeyClosedOpenToday  = "badge.closedOpenToday"
	KeyClosedOpenFuture = "badge.closedOpenTomorrow"
	KeyOpen             = "badge.open"
	KeyOpensSoon        = "badge.opensSoon"
)

// FormatNextOpeningTime renders the next-opening status as a user-facing
// string: a plain "closed" when nothing opens all week, otherwise an
// "opens today at" or "opens tomorrow at" phrasing with the opening time as
// the {time} parameter. The "tomorrow" wording is used for any non-today
// opening, even when the next open day is further out.
func FormatNextOpeningTime(schedule WeeklySchedule, now time.Time, translate TranslateFunc) (string, error) {
	next, err := NextOpeningTime(schedule, now)
	if err != nil {
		return "", err
	}
	if next == nil {
		return translate(KeyClosed, nil), nil
	}

	params := map[string]string{"time": string(next.Time)}
	if next.IsToday {
		return translate(KeyClosedOpenToday, params), nil
	}
	return translate(KeyClosedOpenFuture, params), nil
}

// StatusBadge produces the live status line for the establishment: open now,
// opening within windowMinutes (with {minutes} until opening), or the
// next-opening phrasing from FormatNextOpeningTime.
func StatusBadge(schedule WeeklySchedule, now time.Time, windowMinutes int, translate TranslateFunc) (string, error) {
	day, _ := DayHoursFor(schedule, DayKeyForDate(now))
	current := TimeOfDayOf(now)

	if day.IsOpen {
		open, err := IsTimeInPeriods(current, day.Periods)
		if err != nil {
			return "", err
		}
		if open {
			return translate(KeyOpen, nil), nil
		}

		soon, err := IsOpeningSoon(day, current, windowMinutes)
		if err != nil {
			return "", err
		}
		if soon {
			minutes, err := MinutesUntilOpening(day, current)
			if err != nil {
				return "", err
			}
			return translate(KeyOpensSoon, map[string]string{
				"minutes": strconv.Itoa(minutes),
			}), nil
		}
	}

	return FormatNextOpeningTime(schedule, now, translate)
}
