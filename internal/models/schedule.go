package models

import "time"

// TimeLayout is the wall-clock format of schedule start and end times.
const TimeLayout = "15:04"

// Weekdays lists the schedule day labels in display order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var weekdayByLabel = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// ParseWeekday maps a day label to a time.Weekday.
func ParseWeekday(label string) (time.Weekday, bool) {
	d, ok := weekdayByLabel[label]
	return d, ok
}

// ScheduleEntry represents a recurring weekly class.
// No two entries share the same (Day, Time) slot.
type ScheduleEntry struct {
	// ID is the unique identifier for the class (UUID format).
	ID string `json:"id"`

	// Name is a free-form label, usually the student's name.
	Name string `json:"name"`

	// Day is one of Weekdays.
	Day string `json:"day"`

	// Time is the start time (TimeLayout).
	Time string `json:"time"`

	// EndTime is the optional end time (TimeLayout).
	EndTime string `json:"endTime,omitempty"`
}

// ScheduleInput carries the editable fields of a schedule entry.
type ScheduleInput struct {
	Name    string `json:"name" validate:"required"`
	Day     string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	EndTime string `json:"endTime" validate:"omitempty,datetime=15:04"`
}

// DaySchedule is the read-time projection of one weekday's classes,
// ordered by start time.
type DaySchedule struct {
	Day     string          `json:"day"`
	Entries []ScheduleEntry `json:"entries"`
}
