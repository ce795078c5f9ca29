package tracker

import (
	"time"

	"golang.org/x/text/language"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

// Report builds the monthly summary. A zero Month means the current month.
// With Breakdown set and no Reference, the day and week sub-totals are
// centred on today when reporting the current month, otherwise on the first
// of the month.
func (t *Tracker) Report(q calculator.ReportQuery) models.Report {
	now := t.now()
	if q.Month.IsZero() {
		q.Month = now
	}
	if q.Breakdown && q.Reference.IsZero() {
		start, end := calculator.MonthWindow(q.Month)
		if !now.Before(start) && now.Before(end) {
			q.Reference = now.In(q.Month.Location())
		}
	}
	if q.Language == language.Und {
		q.Language = t.lang
	}

	return calculator.BuildReport(t.Entries(), q)
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}
