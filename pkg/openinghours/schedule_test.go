package openinghours

import (
	"testing"
	"time"
)

// testSchedule is a typical restaurant week: closed Mondays, lunch and
// dinner Tuesday to Saturday, lunch only on Sunday.
func testSchedule() WeeklySchedule {
	split := []Period{
		{Open: "11:00", Close: "14:00"},
		{Open: "18:00", Close: "22:00"},
	}
	return WeeklySchedule{
		"monday":    {Day: "Monday", IsOpen: false},
		"tuesday":   {Day: "Tuesday", IsOpen: true, Periods: split},
		"wednesday": {Day: "Wednesday", IsOpen: true, Periods: split},
		"thursday":  {Day: "Thursday", IsOpen: true, Periods: split},
		"friday":    {Day: "Friday", IsOpen: true, Periods: split},
		"saturday":  {Day: "Saturday", IsOpen: true, Periods: split},
		"sunday":    {Day: "Sunday", IsOpen: true, Periods: []Period{{Open: "11:00", Close: "15:00"}}},
	}
}

// closedSchedule has every day marked closed.
func closedSchedule() WeeklySchedule {
	schedule := WeeklySchedule{}
	for _, key := range DayKeys() {
		schedule[key] = DayHours{Day: key, IsOpen: false}
	}
	return schedule
}

// at builds a zone-naive instant on the given 2024 date (January is week
// starting Monday 2024-01-01).
func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestNextOpeningTime_LaterToday(t *testing.T) {
	// Tuesday 2024-01-02 at 15:00, between services.
	next, err := NextOpeningTime(testSchedule(), at(2, 15, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil {
		t.Fatal("expected a next opening")
	}
	if next.Day != "tuesday" || next.Time != "18:00" || !next.IsToday {
		t.Errorf("next = %+v, want tuesday 18:00 today", next)
	}
}

func TestNextOpeningTime_BeforeFirstService(t *testing.T) {
	next, err := NextOpeningTime(testSchedule(), at(2, 8, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil || next.Time != "11:00" || !next.IsToday {
		t.Errorf("next = %+v, want 11:00 today", next)
	}
}

func TestNextOpeningTime_ClosedDayScansForward(t *testing.T) {
	// Monday 2024-01-01 is closed; the scan lands on Tuesday.
	next, err := NextOpeningTime(testSchedule(), at(1, 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil {
		t.Fatal("expected a next opening")
	}
	if next.Day != "tuesday" || next.Time != "11:00" || next.IsToday {
		t.Errorf("next = %+v, want tuesday 11:00 not today", next)
	}
}

func TestNextOpeningTime_AfterLastServiceWrapsWeek(t *testing.T) {
	// Sunday 2024-01-07 after lunch close; Monday is closed, so Tuesday.
	next, err := NextOpeningTime(testSchedule(), at(7, 20, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil {
		t.Fatal("expected a next opening")
	}
	if next.Day != "tuesday" || next.IsToday {
		t.Errorf("next = %+v, want tuesday not today", next)
	}
}

func TestNextOpeningTime_FullyClosedWeek(t *testing.T) {
	next, err := NextOpeningTime(closedSchedule(), at(3, 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != nil {
		t.Errorf("next = %+v, want nil for a fully closed week", next)
	}
}

func TestNextOpeningTime_OpenDayWithoutPeriodsIsSkipped(t *testing.T) {
	schedule := closedSchedule()
	schedule["wednesday"] = DayHours{Day: "wednesday", IsOpen: true} // no periods
	schedule["friday"] = DayHours{Day: "friday", IsOpen: true, Periods: []Period{{Open: "10:00", Close: "16:00"}}}

	next, err := NextOpeningTime(schedule, at(1, 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil || next.Day != "friday" {
		t.Errorf("next = %+v, want friday", next)
	}
}

func TestNextOpeningTime_PicksEarliestOfUnsortedPeriods(t *testing.T) {
	schedule := closedSchedule()
	schedule["thursday"] = DayHours{
		Day:    "thursday",
		IsOpen: true,
		Periods: []Period{
			{Open: "18:00", Close: "22:00"},
			{Open: "11:30", Close: "14:00"},
		},
	}

	next, err := NextOpeningTime(schedule, at(1, 9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == nil || next.Time != "11:30" {
		t.Errorf("next = %+v, want earliest opening 11:30", next)
	}
}

func TestDayHoursFor(t *testing.T) {
	schedule := testSchedule()

	t.Run("exact key", func(t *testing.T) {
		day, found := DayHoursFor(schedule, "friday")
		if !found || day.Day != "Friday" {
			t.Errorf("got %+v found=%v, want Friday found", day, found)
		}
	})

	t.Run("case-insensitive key", func(t *testing.T) {
		day, found := DayHoursFor(schedule, "Friday")
		if !found || day.Day != "Friday" {
			t.Errorf("got %+v found=%v, want Friday found", day, found)
		}
	})

	t.Run("unknown key falls back to monday", func(t *testing.T) {
		day, found := DayHoursFor(schedule, "someday")
		if found {
			t.Error("found = true, want false for fallback")
		}
		if day.Day != "Monday" {
			t.Errorf("day = %+v, want Monday fallback", day)
		}
	})

	t.Run("no monday to fall back on", func(t *testing.T) {
		_, found := DayHoursFor(WeeklySchedule{"friday": {Day: "Friday"}}, "someday")
		if found {
			t.Error("found = true, want false")
		}
	})
}

func TestIsOpenNow(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "tuesday lunch", now: at(2, 12, 30), expected: true},
		{name: "tuesday between services", now: at(2, 16, 0), expected: false},
		{name: "closed monday", now: at(1, 12, 30), expected: false},
		{name: "sunday lunch", now: at(7, 13, 0), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOpenNow(testSchedule(), tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("IsOpenNow = %v, want %v", got, tt.expected)
			}
		})
	}
}
