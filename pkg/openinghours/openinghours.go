// Package openinghours implements opening-hours resolution for a weekly
// schedule of open/close periods, scheduled and emergency closings, and
// time-bound special messages.
//
// Every function is pure: callers supply an immutable schedule snapshot and
// an explicit clock value, and get the same answer for the same inputs. The
// package never reads the wall clock or any global state, which keeps it
// trivially testable and safe to call from any goroutine.
//
// Time-zone policy: `now` must already be in the establishment's local zone.
// Converting from the stored timezone name happens at the service boundary,
// not here.
package openinghours

// TimeOfDay is a wall-clock time in zero-padded 24-hour "HH:MM" form.
// Zero-padded values compare correctly as strings, which the schedule
// resolver relies on when ordering periods.
type TimeOfDay string

// Period is a single contiguous open interval within one calendar day.
// Periods do not span midnight; a period with Open > Close is an empty
// interval and never matches.
type Period struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// DayHours describes one day of the weekly schedule.
// When IsOpen is false the Periods list is ignored, even if non-empty.
// Periods are not required to be sorted or non-overlapping at the source;
// consumers sort before evaluating and treat overlap as a plain union of
// open time.
type DayHours struct {
	Day     string   `json:"day"`
	IsOpen  bool     `json:"isOpen"`
	Periods []Period `json:"periods"`
}

// WeeklySchedule maps lowercase English day names ("monday".."sunday") to
// that day's hours. A well-formed schedule carries all seven keys; lookups
// tolerate missing keys regardless (see DayHoursFor).
type WeeklySchedule map[string]DayHours

// ScheduledClosing is a planned closure: either a single day (Date set) or
// an inclusive range (StartDate..EndDate). Date strings are RFC3339
// timestamps or plain "2006-01-02" dates; comparisons use the full parsed
// timestamp, not just the calendar date.
type ScheduledClosing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	IsRecurring bool   `json:"isRecurring"`
	Date        string `json:"date,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// EmergencyClosing is an unplanned closure. One with no start or end date
// never matches the active or upcoming filters: a defined window is required.
type EmergencyClosing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Priority    int    `json:"priority"`
}

// SpecialMessage is a time-bound banner message. An empty EndDate means the
// message never expires once started. Lower Priority values are shown first.
type SpecialMessage struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Priority  int    `json:"priority"`
}

// NextOpening is the result of resolving the next time the establishment
// opens: the day key, the opening time, and whether that day is today.
type NextOpening struct {
	Day     string    `json:"day"`
	Time    TimeOfDay `json:"time"`
	IsToday bool      `json:"isToday"`
}

// TranslateFunc resolves a message key with optional parameters into a
// user-facing string. The package treats it as opaque; locale selection and
// catalog lookup belong to the caller.
type TranslateFunc func(key string, params map[string]string) string

// dayKeys lists the schedule keys in week order, used when scanning forward
// for the next open day.
var dayKeys = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DayKeys returns the schedule day keys in week order, Monday first.
func DayKeys() []string {
	keys := make([]string, len(dayKeys))
	copy(keys, dayKeys)
	return keys
}
