package models

import "time"

const (
	// DateLayout is the format of Entry.Date.
	DateLayout = "2006-01-02"
	// MonthLayout is the format used to select a report month.
	MonthLayout = "2006-01"
)

// Entry represents one logged, billable tutoring session.
type Entry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// StudentID references the student the session was for.
	// The student may since have been deleted.
	StudentID string `json:"studentId"`

	// StudentName is the student's name when the entry was created or last edited.
	StudentName string `json:"studentName"`

	// Date is the local calendar date of the session (DateLayout).
	Date string `json:"date"`

	// Hours is the session length. Any positive value is accepted.
	Hours float64 `json:"hours"`

	// HourlyPrice is the rate in effect when the entry was written.
	HourlyPrice float64 `json:"hourlyPriceAtThatTime"`

	// TotalAmount is always Hours × HourlyPrice; it is recomputed on every write.
	TotalAmount float64 `json:"totalAmount"`
}

// Day parses Date in the given location.
func (e Entry) Day(loc *time.Location) (time.Time, bool) {
	return ParseDate(e.Date, loc)
}

// EntryInput carries the editable fields of an entry.
type EntryInput struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"gt=0,lte=24"`
	HourlyPrice float64 `json:"hourlyPrice" validate:"gt=0,lte=1000000"`
}

// Upper bounds on session inputs, mirrored in the validate tags above and on
// StudentInput. They keep every entry total a finite, storable number.
const (
	MaxSessionHours = 24
	MaxHourlyPrice  = 1_000_000
)

// DateKey formats t as a local calendar date key without any zone conversion.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseMonth parses a MonthLayout string as the first day of that month in loc.
func ParseMonth(value string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
