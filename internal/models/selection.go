package models

// DefaultSessionHours is the duration preselected for every student each day.
const DefaultSessionHours = 1.0

// Selection is a student's pending check-in for today. Selections live only
// in memory and are reset after every confirmation.
type Selection struct {
	OptedIn bool    `json:"optedIn"`
	Hours   float64 `json:"hours"`
}

// DefaultSelection returns the state every student starts the day with.
func DefaultSelection() Selection {
	return Selection{OptedIn: false, Hours: DefaultSessionHours}
}

// TodayCard is one row of the Today view.
type TodayCard struct {
	Student   Student   `json:"student"`
	Selection Selection `json:"selection"`
}

// ConfirmResult is the outcome of confirming today's check-ins.
// Duplicates are students skipped because they already had an entry today;
// they are a normal partial success, not an error.
type ConfirmResult struct {
	Date       string   `json:"date"`
	Created    []Entry  `json:"created"`
	Duplicates []string `json:"duplicates"`
}
