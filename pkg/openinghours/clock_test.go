package openinghours

import (
	"errors"
	"testing"
	"time"
)

func TestMinutesOfDay_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    TimeOfDay
		expected int
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "one minute past", input: "00:01", expected: 1},
		{name: "morning", input: "09:30", expected: 570},
		{name: "noon", input: "12:00", expected: 720},
		{name: "evening", input: "18:05", expected: 1085},
		{name: "last minute", input: "23:59", expected: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinutesOfDay(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("MinutesOfDay(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMinutesOfDay_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input TimeOfDay
	}{
		{name: "empty", input: ""},
		{name: "no colon", input: "1200"},
		{name: "too many groups", input: "12:00:00"},
		{name: "hour out of range", input: "24:00"},
		{name: "minute out of range", input: "12:60"},
		{name: "negative hour", input: "-1:30"},
		{name: "non-numeric", input: "ab:cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MinutesOfDay(tt.input)
			if err == nil {
				t.Fatalf("MinutesOfDay(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, ErrInvalidTimeOfDay) {
				t.Errorf("error = %v, want ErrInvalidTimeOfDay", err)
			}
		})
	}
}

func TestFormatTimeForLocale(t *testing.T) {
	tests := []struct {
		name     string
		input    TimeOfDay
		locale   string
		expected string
	}{
		{name: "english evening", input: "18:05", locale: "en", expected: "6:05 PM"},
		{name: "english US region", input: "18:05", locale: "en-US", expected: "6:05 PM"},
		{name: "english morning", input: "09:15", locale: "en-GB", expected: "9:15 AM"},
		{name: "english midnight", input: "00:30", locale: "en", expected: "12:30 AM"},
		{name: "english noon", input: "12:00", locale: "en", expected: "12:00 PM"},
		{name: "french", input: "18:05", locale: "fr", expected: "18:05"},
		{name: "french region", input: "18:05", locale: "fr-FR", expected: "18:05"},
		{name: "dutch", input: "09:15", locale: "nl", expected: "09:15"},
		{name: "garbage locale falls back to 24h", input: "18:05", locale: "???", expected: "18:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTimeForLocale(tt.input, tt.locale)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("FormatTimeForLocale(%q, %q) = %q, want %q", tt.input, tt.locale, got, tt.expected)
			}
		})
	}
}

func TestFormatTimeForLocale_InvalidTime(t *testing.T) {
	if _, err := FormatTimeForLocale("25:00", "en"); !errors.Is(err, ErrInvalidTimeOfDay) {
		t.Errorf("error = %v, want ErrInvalidTimeOfDay", err)
	}
}

func TestDayKeyForDate(t *testing.T) {
	// 2024-01-01 is a Monday.
	for i, expected := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		date := time.Date(2024, 1, 1+i, 12, 0, 0, 0, time.UTC)
		if got := DayKeyForDate(date); got != expected {
			t.Errorf("DayKeyForDate(%s) = %q, want %q", date.Format("2006-01-02"), got, expected)
		}
	}
}

func TestTimeOfDayOf(t *testing.T) {
	date := time.Date(2024, 3, 5, 9, 7, 42, 0, time.UTC)
	if got := TimeOfDayOf(date); got != "09:07" {
		t.Errorf("TimeOfDayOf = %q, want %q", got, "09:07")
	}
}
