package calculator

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/tutortrack/internal/models"
)

// ReportQuery selects the entries a report covers.
type ReportQuery struct {
	// Month is any instant inside the month to report on. Its location is used
	// for every date comparison.
	Month time.Time

	// StudentID restricts the report to one student. Empty means all students.
	StudentID string

	// Breakdown adds day and week sub-totals around Reference.
	Breakdown bool

	// Reference is the day the breakdown is centred on. Zero means the first
	// day of Month.
	Reference time.Time

	// Language controls the name ordering of rows. The zero value sorts with
	// the root collation.
	Language language.Tag
}

// MonthWindow returns the half-open range [start, end) of the month containing t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// WeekWindow returns the Sunday-to-Saturday week containing t.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// datedEntry is an entry with its parsed calendar date.
type datedEntry struct {
	entry models.Entry
	day   time.Time
}

// BuildReport aggregates the entries of one month into per-student rows and a
// month total.
//
// Algorithm:
// - Keep entries dated in [monthStart, monthEnd), then apply the student filter
// - Group by the entry's name snapshot: sum hours and totals, collect distinct prices
// - Sort rows by name using locale-aware collation
// - The total row sums every matching entry, independent of the grouping
//
// Entries whose date cannot be parsed are left out. When nothing matches the
// report is marked Empty.
func BuildReport(entries []models.Entry, q ReportQuery) models.Report {
	if q.Month.IsZero() {
		q.Month = time.Now()
	}
	loc := q.Month.Location()
	monthStart, monthEnd := MonthWindow(q.Month)

	report := models.Report{
		Month:     monthStart.Format(models.MonthLayout),
		StudentID: q.StudentID,
		Rows:      []models.StudentSummary{},
	}

	var matched []datedEntry
	for _, e := range entries {
		day, ok := e.Day(loc)
		if !ok || !inWindow(day, monthStart, monthEnd) {
			continue
		}
		if q.StudentID != "" && e.StudentID != q.StudentID {
			continue
		}
		matched = append(matched, datedEntry{entry: e, day: day})
	}

	if len(matched) == 0 {
		report.Empty = true
		return report
	}

	// Track summaries per name snapshot
	groups := make(map[string]*summaryBuilder)
	var total accumulator

	for _, m := range matched {
		name := m.entry.StudentName
		if _, exists := groups[name]; !exists {
			groups[name] = newSummaryBuilder(name)
		}
		groups[name].add(m.entry)
		total.add(m.entry.Hours, m.entry.TotalAmount)
	}

	for _, g := range groups {
		report.Rows = append(report.Rows, g.summary())
	}
	sortByName(report.Rows, q.Language)

	report.Total = models.Totals{Hours: total.hoursFloat(), Earnings: total.earningsFloat()}

	if q.Breakdown {
		ref := q.Reference
		if ref.IsZero() {
			ref = monthStart
		}
		ref = ref.In(loc)
		dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		weekStart, weekEnd := WeekWindow(ref)

		day := windowTotals(matched, clampStart(dayStart, monthStart), clampEnd(dayStart.AddDate(0, 0, 1), monthEnd))
		week := windowTotals(matched, clampStart(weekStart, monthStart), clampEnd(weekEnd, monthEnd))
		report.Day = &day
		report.Week = &week
	}

	return report
}

type summaryBuilder struct {
	name   string
	acc    accumulator
	prices []float64
	seen   map[float64]bool
}

func newSummaryBuilder(name string) *summaryBuilder {
	return &summaryBuilder{name: name, seen: make(map[float64]bool)}
}

func (b *summaryBuilder) add(e models.Entry) {
	b.acc.add(e.Hours, e.TotalAmount)
	if !b.seen[e.HourlyPrice] {
		b.seen[e.HourlyPrice] = true
		b.prices = append(b.prices, e.HourlyPrice)
	}
}

func (b *summaryBuilder) summary() models.StudentSummary {
	return models.StudentSummary{
		StudentName:   b.name,
		TotalHours:    b.acc.hoursFloat(),
		TotalEarnings: b.acc.earningsFloat(),
		Prices:        b.prices,
	}
}

func sortByName(rows []models.StudentSummary, tag language.Tag) {
	c := collate.New(tag)
	sort.SliceStable(rows, func(i, j int) bool {
		return c.CompareString(rows[i].StudentName, rows[j].StudentName) < 0
	})
}

func windowTotals(entries []datedEntry, start, end time.Time) models.Totals {
	var acc accumulator
	for _, m := range entries {
		if inWindow(m.day, start, end) {
			acc.add(m.entry.Hours, m.entry.TotalAmount)
		}
	}
	return models.Totals{Hours: acc.hoursFloat(), Earnings: acc.earningsFloat()}
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func clampStart(t, monthStart time.Time) time.Time {
	if t.Before(monthStart) {
		return monthStart
	}
	return t
}

func clampEnd(t, monthEnd time.Time) time.Time {
	if t.After(monthEnd) {
		return monthEnd
	}
	return t
}
