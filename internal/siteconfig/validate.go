package siteconfig

import (
	"fmt"
	"time"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// dateLayouts accepted on configuration writes; the same shapes the core
// selectors parse on read.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func validDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// ValidateSchedule checks a weekly schedule before it is persisted: all
// seven day keys present, every period time parseable, and no period
// closing before it opens. The write path is where garbage gets rejected;
// readers only skip what they cannot parse.
func ValidateSchedule(schedule openinghours.WeeklySchedule) []FieldError {
	var fieldErrors []FieldError

	for _, key := range openinghours.DayKeys() {
		day, ok := schedule[key]
		if !ok {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   key,
				Message: "missing day entry",
			})
			continue
		}

		for i, period := range day.Periods {
			field := fmt.Sprintf("%s.periods[%d]", key, i)

			openMin, err := openinghours.MinutesOfDay(period.Open)
			if err != nil {
				fieldErrors = append(fieldErrors, FieldError{Field: field + ".open", Message: "expected HH:MM"})
				continue
			}
			closeMin, err := openinghours.MinutesOfDay(period.Close)
			if err != nil {
				fieldErrors = append(fieldErrors, FieldError{Field: field + ".close", Message: "expected HH:MM"})
				continue
			}
			if openMin > closeMin {
				fieldErrors = append(fieldErrors, FieldError{Field: field, Message: "close must not be before open"})
			}
		}
	}

	return fieldErrors
}

func validateScheduledClosing(index int, closing openinghours.ScheduledClosing) []FieldError {
	field := fmt.Sprintf("scheduledClosings[%d]", index)
	var fieldErrors []FieldError

	if closing.Title == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".title", Message: "title is required"})
	}

	switch {
	case closing.Date != "":
		if !validDate(closing.Date) {
			fieldErrors = append(fieldErrors, FieldError{Field: field + ".date", Message: "unparseable date"})
		}
	case closing.StartDate != "" || closing.EndDate != "":
		if !validDate(closing.StartDate) {
			fieldErrors = append(fieldErrors, FieldError{Field: field + ".startDate", Message: "unparseable date"})
		}
		if !validDate(closing.EndDate) {
			fieldErrors = append(fieldErrors, FieldError{Field: field + ".endDate", Message: "unparseable date"})
		}
	default:
		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: "either date or startDate/endDate is required"})
	}

	return fieldErrors
}

func validateEmergencyClosing(index int, closing openinghours.EmergencyClosing) []FieldError {
	field := fmt.Sprintf("emergencyClosings[%d]", index)
	var fieldErrors []FieldError

	if closing.Title == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".title", Message: "title is required"})
	}
	if closing.StartDate != "" && !validDate(closing.StartDate) {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".startDate", Message: "unparseable date"})
	}
	if closing.EndDate != "" && !validDate(closing.EndDate) {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".endDate", Message: "unparseable date"})
	}

	return fieldErrors
}

func validateSpecialMessage(index int, message openinghours.SpecialMessage) []FieldError {
	field := fmt.Sprintf("specialMessages[%d]", index)
	var fieldErrors []FieldError

	if message.Title == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".title", Message: "title is required"})
	}
	if !validDate(message.StartDate) {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".startDate", Message: "unparseable date"})
	}
	if message.EndDate != "" && !validDate(message.EndDate) {
		fieldErrors = append(fieldErrors, FieldError{Field: field + ".endDate", Message: "unparseable date"})
	}

	return fieldErrors
}
