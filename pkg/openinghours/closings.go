package openinghours

import (
	"sort"
	"time"
)

// dateLayouts are the accepted formats for closing and message dates:
// full RFC3339 timestamps from the dashboard, or bare calendar dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses a stored date string. Bare dates resolve to midnight UTC.
// The bool is false for empty or unparseable values; records carrying such
// dates simply never match a window, mirroring how the dashboard treats
// invalid timestamps.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ActiveClosing returns the first scheduled closing whose range contains now.
// Both StartDate and EndDate must be set: single-day records (Date only)
// belong to the upcoming filter, not the active one. Returns nil when no
// closing applies.
func ActiveClosing(closings []ScheduledClosing, now time.Time) *ScheduledClosing {
	for _, c := range closings {
		if !c.IsActive {
			continue
		}
		start, okStart := parseDate(c.StartDate)
		end, okEnd := parseDate(c.EndDate)
		if !okStart || !okEnd {
			continue
		}
		if !now.Before(start) && !now.After(end) {
			closing := c
			return &closing
		}
	}
	return nil
}

// UpcomingClosings returns active closings that start strictly in the
// future, ordered soonest first and truncated to limit. Ranged closings are
// keyed by StartDate, single-day closings by Date.
func UpcomingClosings(closings []ScheduledClosing, now time.Time, limit int) []ScheduledClosing {
	type upcoming struct {
		closing ScheduledClosing
		start   time.Time
	}

	var matches []upcoming
	for _, c := range closings {
		if !c.IsActive {
			continue
		}
		key := c.StartDate
		if c.Date != "" {
			key = c.Date
		}
		start, ok := parseDate(key)
		if !ok || !start.After(now) {
			continue
		}
		matches = append(matches, upcoming{closing: c, start: start})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start.Before(matches[j].start)
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]ScheduledClosing, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.closing)
	}
	return result
}

// ActiveEmergencyClosing returns the highest-precedence emergency closing
// whose window contains now, nil when none applies. Lower Priority values
// win; ties keep input order. A closing without both dates set never
// matches, regardless of its active flag.
func ActiveEmergencyClosing(closings []EmergencyClosing, now time.Time) *EmergencyClosing {
	var best *EmergencyClosing
	for i := range closings {
		c := closings[i]
		if !c.IsActive {
			continue
		}
		start, okStart := parseDate(c.StartDate)
		end, okEnd := parseDate(c.EndDate)
		if !okStart || !okEnd {
			continue
		}
		if now.Before(start) || now.After(end) {
			continue
		}
		if best == nil || c.Priority < best.Priority {
			closing := c
			best = &closing
		}
	}
	return best
}

// ActiveMessages filters to messages whose window contains now, ordered by
// ascending priority (lower value shown first, ties stable). An empty
// EndDate is an open-ended window. Inactive messages are excluded even when
// their window matches.
func ActiveMessages(messages []SpecialMessage, now time.Time) []SpecialMessage {
	var active []SpecialMessage
	for _, m := range messages {
		if !m.IsActive {
			continue
		}
		start, ok := parseDate(m.StartDate)
		if !ok || now.Before(start) {
			continue
		}
		if m.EndDate != "" {
			end, ok := parseDate(m.EndDate)
			if !ok || now.After(end) {
				continue
			}
		}
		active = append(active, m)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})
	return active
}
