package openinghours

import (
	"strings"
	"time"
)

// DayHoursFor looks up a day's hours by key. The match is case-insensitive;
// when the key is absent entirely the Monday entry is substituted as a
// documented default rather than surfacing an error, and the returned bool
// is false so callers that care can tell. The bool is also false when the
// schedule has no Monday entry to fall back on.
func DayHoursFor(schedule WeeklySchedule, dayKey string) (DayHours, bool) {
	if day, ok := schedule[dayKey]; ok {
		return day, true
	}

	lower := strings.ToLower(dayKey)
	for key, day := range schedule {
		if strings.ToLower(key) == lower {
			return day, true
		}
	}

	day, ok := schedule["monday"]
	if !ok {
		return DayHours{}, false
	}
	return day, false
}

// NextOpeningTime resolves when the establishment next opens relative to now.
//
// If today still has a period opening strictly after the current time, that
// period wins and IsToday is true. Otherwise the week is scanned forward one
// day at a time, wrapping after Sunday, and the first open day with periods
// supplies its earliest opening time. A nil result means no day of the week
// has any open period: a fully closed establishment, which is a normal
// outcome rather than an error.
func NextOpeningTime(schedule WeeklySchedule, now time.Time) (*NextOpening, error) {
	todayKey := DayKeyForDate(now)
	current := TimeOfDayOf(now)

	if today, ok := schedule[todayKey]; ok && today.IsOpen {
		_, next, err := CurrentAndNextPeriod(today, current)
		if err != nil {
			return nil, err
		}
		if next != nil {
			return &NextOpening{Day: todayKey, Time: next.Open, IsToday: true}, nil
		}
	}

	todayIdx := dayIndex(todayKey)
	for offset := 1; offset <= len(dayKeys); offset++ {
		key := dayKeys[(todayIdx+offset)%len(dayKeys)]
		day, ok := schedule[key]
		if !ok || !day.IsOpen || len(day.Periods) == 0 {
			continue
		}
		earliest := sortedPeriods(day.Periods)[0]
		if _, err := MinutesOfDay(earliest.Open); err != nil {
			return nil, err
		}
		return &NextOpening{Day: key, Time: earliest.Open, IsToday: false}, nil
	}

	return nil, nil
}

// IsOpenNow reports whether the establishment is open at the given instant
// according to the weekly schedule alone; closings are judged separately.
func IsOpenNow(schedule WeeklySchedule, now time.Time) (bool, error) {
	day, _ := DayHoursFor(schedule, DayKeyForDate(now))
	if !day.IsOpen {
		return false, nil
	}
	return IsTimeInPeriods(TimeOfDayOf(now), day.Periods)
}

func dayIndex(key string) int {
	for i, k := range dayKeys {
		if k == key {
			return i
		}
	}
	return 0
}
