package openinghours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ErrInvalidTimeOfDay is returned when a time string is not two
// colon-separated numeric groups within the valid hour/minute ranges.
var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")

// MinutesOfDay parses a TimeOfDay and returns minutes since midnight,
// in [0, 1439]. Malformed values fail with ErrInvalidTimeOfDay; nothing in
// this package defaults or swallows a bad time string.
func MinutesOfDay(t TimeOfDay) (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, t)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, t)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, t)
	}

	return hour*60 + minute, nil
}

// FormatTimeForLocale renders a TimeOfDay for display: a 12-hour clock with
// AM/PM when the locale's base language is English, a 24-hour clock for
// everything else. This is a deliberate two-mode simplification, not a full
// CLDR formatter.
func FormatTimeForLocale(t TimeOfDay, locale string) (string, error) {
	minutes, err := MinutesOfDay(t)
	if err != nil {
		return "", err
	}

	hour := minutes / 60
	minute := minutes % 60

	if !isEnglishLike(locale) {
		return fmt.Sprintf("%02d:%02d", hour, minute), nil
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem), nil
}

// isEnglishLike reports whether the locale tag's base language is English.
// Unparseable tags fall back to 24-hour display.
func isEnglishLike(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base.String() == "en"
}

// DayKeyForDate returns the lowercase English weekday name for the given
// instant, in whatever zone the time value carries.
func DayKeyForDate(now time.Time) string {
	return strings.ToLower(now.Weekday().String())
}

// TimeOfDayOf extracts the wall-clock time of the given instant as a
// zero-padded TimeOfDay.
func TimeOfDayOf(now time.Time) TimeOfDay {
	return TimeOfDay(fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute()))
}
