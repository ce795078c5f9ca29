package models

// StudentSummary is one student's row in a monthly report.
type StudentSummary struct {
	// StudentName is the name snapshot the entries were grouped by.
	StudentName string `json:"studentName"`

	// TotalHours is the sum of session hours in the window.
	TotalHours float64 `json:"totalHours"`

	// TotalEarnings is the sum of entry totals in the window.
	TotalEarnings float64 `json:"totalEarnings"`

	// Prices lists every distinct hourly price seen, in first-seen order.
	// A rate change mid-month shows up as more than one value.
	Prices []float64 `json:"prices"`
}

// Totals aggregates hours and earnings over a set of entries.
type Totals struct {
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

// Report is the monthly earnings summary.
type Report struct {
	// Month is the reported month (MonthLayout).
	Month string `json:"month"`

	// StudentID is the applied filter; empty means all students.
	StudentID string `json:"studentId,omitempty"`

	// Empty is set when no entry matched. Rows and totals are then meaningless
	// and should be shown as "no data".
	Empty bool `json:"empty"`

	// Rows holds one summary per student name, sorted by name.
	Rows []StudentSummary `json:"rows"`

	// Total covers every matching entry in the month.
	Total Totals `json:"total"`

	// Day and Week are the optional sub-totals around the reference date,
	// clamped to the month. Nil unless a breakdown was requested.
	Day  *Totals `json:"day,omitempty"`
	Week *Totals `json:"week,omitempty"`
}
