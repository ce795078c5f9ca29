package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/tutortrack/internal/models"
)

func entry(studentID, name, date string, hours, price float64) models.Entry {
	total, _ := EntryTotal(hours, price)
	return models.Entry{
		ID:          studentID + "-" + date,
		StudentID:   studentID,
		StudentName: name,
		Date:        date,
		Hours:       hours,
		HourlyPrice: price,
		TotalAmount: total,
	}
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuildReport(t *testing.T) {
	entries := []models.Entry{
		entry("s-alice", "Alice", "2026-03-02", 2, 20),
		entry("s-bob", "Bob", "2026-03-10", 3, 30),
		entry("s-alice", "Alice", "2026-03-21", 1, 25),
		// Outside the month on both sides
		entry("s-alice", "Alice", "2026-02-28", 5, 20),
		entry("s-bob", "Bob", "2026-04-01", 5, 30),
	}

	tests := []struct {
		name         string
		query        ReportQuery
		wantEmpty    bool
		validateFunc func(t *testing.T, r models.Report)
	}{
		{
			name:  "all students for the month",
			query: ReportQuery{Month: month(2026, time.March)},
			validateFunc: func(t *testing.T, r models.Report) {
				// Alice: 2h @ 20 + 1h @ 25 = 3h, 65
				// Bob: 3h @ 30 = 3h, 90
				// Total: 6h, 155
				if len(r.Rows) != 2 {
					t.Fatalf("rows = %d, want 2", len(r.Rows))
				}
				alice, bob := r.Rows[0], r.Rows[1]
				if alice.StudentName != "Alice" || bob.StudentName != "Bob" {
					t.Fatalf("row order = %s, %s; want Alice, Bob", alice.StudentName, bob.StudentName)
				}
				if math.Abs(alice.TotalHours-3) > 0.01 {
					t.Errorf("Alice hours = %v, want 3", alice.TotalHours)
				}
				if math.Abs(alice.TotalEarnings-65) > 0.01 {
					t.Errorf("Alice earnings = %v, want 65", alice.TotalEarnings)
				}
				if len(alice.Prices) != 2 || alice.Prices[0] != 20 || alice.Prices[1] != 25 {
					t.Errorf("Alice prices = %v, want [20 25]", alice.Prices)
				}
				if math.Abs(bob.TotalEarnings-90) > 0.01 {
					t.Errorf("Bob earnings = %v, want 90", bob.TotalEarnings)
				}
				if len(bob.Prices) != 1 || bob.Prices[0] != 30 {
					t.Errorf("Bob prices = %v, want [30]", bob.Prices)
				}
				if math.Abs(r.Total.Hours-6) > 0.01 {
					t.Errorf("total hours = %v, want 6", r.Total.Hours)
				}
				if math.Abs(r.Total.Earnings-155) > 0.01 {
					t.Errorf("total earnings = %v, want 155", r.Total.Earnings)
				}
				if r.Day != nil || r.Week != nil {
					t.Error("expected no breakdown unless requested")
				}
				if r.Month != "2026-03" {
					t.Errorf("month = %q, want 2026-03", r.Month)
				}
			},
		},
		{
			name:  "single student filter",
			query: ReportQuery{Month: month(2026, time.March), StudentID: "s-bob"},
			validateFunc: func(t *testing.T, r models.Report) {
				if len(r.Rows) != 1 || r.Rows[0].StudentName != "Bob" {
					t.Fatalf("rows = %+v, want only Bob", r.Rows)
				}
				if math.Abs(r.Total.Earnings-90) > 0.01 {
					t.Errorf("total earnings = %v, want 90", r.Total.Earnings)
				}
			},
		},
		{
			name:      "month without entries reports no data",
			query:     ReportQuery{Month: month(2026, time.January)},
			wantEmpty: true,
		},
		{
			name:      "unknown student reports no data",
			query:     ReportQuery{Month: month(2026, time.March), StudentID: "s-nobody"},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport(entries, tt.query)
			if r.Empty != tt.wantEmpty {
				t.Fatalf("Empty = %v, want %v", r.Empty, tt.wantEmpty)
			}
			if tt.wantEmpty && len(r.Rows) != 0 {
				t.Errorf("expected no rows for empty report, got %d", len(r.Rows))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, r)
			}
		})
	}
}

func TestBuildReport_GroupsByNameSnapshot(t *testing.T) {
	// Same student renamed mid-month: history keeps both names.
	entries := []models.Entry{
		entry("s-1", "Charlie", "2026-05-03", 1, 40),
		entry("s-1", "Charles", "2026-05-10", 1, 40),
	}

	r := BuildReport(entries, ReportQuery{Month: month(2026, time.May)})
	if len(r.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(r.Rows))
	}
	if r.Rows[0].StudentName != "Charles" || r.Rows[1].StudentName != "Charlie" {
		t.Errorf("rows = %s, %s; want Charles, Charlie", r.Rows[0].StudentName, r.Rows[1].StudentName)
	}
}

func TestBuildReport_LocaleAwareOrder(t *testing.T) {
	entries := []models.Entry{
		entry("s-1", "bob", "2026-05-03", 1, 10),
		entry("s-2", "Émile", "2026-05-03", 1, 10),
		entry("s-3", "Zoe", "2026-05-03", 1, 10),
		entry("s-4", "alice", "2026-05-03", 1, 10),
	}

	r := BuildReport(entries, ReportQuery{Month: month(2026, time.May)})
	want := []string{"alice", "bob", "Émile", "Zoe"}
	for i, name := range want {
		if r.Rows[i].StudentName != name {
			t.Errorf("row %d = %s, want %s", i, r.Rows[i].StudentName, name)
		}
	}
}

func TestBuildReport_FilterIsSubsetOfAll(t *testing.T) {
	entries := []models.Entry{
		entry("s-a", "Ann", "2026-06-01", 1.5, 33.3),
		entry("s-b", "Ben", "2026-06-02", 2, 41.1),
		entry("s-a", "Ann", "2026-06-15", 1, 35),
		entry("s-c", "Cat", "2026-06-30", 1, 19.99),
	}
	q := ReportQuery{Month: month(2026, time.June)}
	all := BuildReport(entries, q)

	var hours, earnings float64
	for _, id := range []string{"s-a", "s-b", "s-c"} {
		q.StudentID = id
		one := BuildReport(entries, q)
		if one.Total.Hours > all.Total.Hours+0.001 || one.Total.Earnings > all.Total.Earnings+0.001 {
			t.Errorf("student %s totals %+v exceed all-student totals %+v", id, one.Total, all.Total)
		}
		hours += one.Total.Hours
		earnings += one.Total.Earnings
	}
	if math.Abs(hours-all.Total.Hours) > 0.01 || math.Abs(earnings-all.Total.Earnings) > 0.01 {
		t.Errorf("sum of per-student totals = (%v, %v), want (%v, %v)", hours, earnings, all.Total.Hours, all.Total.Earnings)
	}
}

func TestBuildReport_Breakdown(t *testing.T) {
	// March 2026: the 1st is a Sunday, the 4th a Wednesday.
	entries := []models.Entry{
		entry("s-a", "Ann", "2026-03-01", 1, 10),
		entry("s-a", "Ann", "2026-03-04", 2, 10),
		entry("s-b", "Ben", "2026-03-04", 1, 20),
		entry("s-b", "Ben", "2026-03-08", 1, 20),
	}

	t.Run("reference inside month", func(t *testing.T) {
		r := BuildReport(entries, ReportQuery{
			Month:     month(2026, time.March),
			Breakdown: true,
			Reference: time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC),
		})
		if r.Day == nil || r.Week == nil {
			t.Fatal("expected day and week totals")
		}
		// Day: 2h@10 + 1h@20
		if math.Abs(r.Day.Hours-3) > 0.01 || math.Abs(r.Day.Earnings-40) > 0.01 {
			t.Errorf("day = %+v, want 3h / 40", *r.Day)
		}
		// Week Sun 1st .. Sat 7th
		if math.Abs(r.Week.Hours-4) > 0.01 || math.Abs(r.Week.Earnings-50) > 0.01 {
			t.Errorf("week = %+v, want 4h / 50", *r.Week)
		}
		if math.Abs(r.Total.Earnings-70) > 0.01 {
			t.Errorf("month = %+v, want 70", r.Total)
		}
	})

	t.Run("week clamped to month start", func(t *testing.T) {
		// April 2026 starts on a Wednesday; the week of the 2nd begins March 29.
		spill := []models.Entry{
			entry("s-a", "Ann", "2026-03-30", 1, 10),
			entry("s-a", "Ann", "2026-04-02", 1, 10),
		}
		r := BuildReport(spill, ReportQuery{
			Month:     month(2026, time.April),
			Breakdown: true,
			Reference: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
		})
		if math.Abs(r.Week.Hours-1) > 0.01 {
			t.Errorf("week hours = %v, want 1 (March entry excluded)", r.Week.Hours)
		}
	})

	t.Run("default reference is first of month", func(t *testing.T) {
		r := BuildReport(entries, ReportQuery{Month: month(2026, time.March), Breakdown: true})
		if math.Abs(r.Day.Hours-1) > 0.01 {
			t.Errorf("day hours = %v, want 1", r.Day.Hours)
		}
	})
}

func TestBuildReport_SkipsUnparseableDates(t *testing.T) {
	entries := []models.Entry{
		entry("s-a", "Ann", "not-a-date", 1, 10),
		entry("s-a", "Ann", "2026-03-05", 1, 10),
	}
	r := BuildReport(entries, ReportQuery{Month: month(2026, time.March)})
	if math.Abs(r.Total.Hours-1) > 0.01 {
		t.Errorf("total hours = %v, want 1", r.Total.Hours)
	}
}

func TestWeekWindow(t *testing.T) {
	// 2026-10-21 is a Wednesday.
	start, end := WeekWindow(time.Date(2026, time.October, 21, 13, 30, 0, 0, time.UTC))
	if start.Weekday() != time.Sunday || start.Day() != 18 {
		t.Errorf("week start = %v, want Sunday the 18th", start)
	}
	if end.Sub(start) != 7*24*time.Hour {
		t.Errorf("week length = %v, want 7 days", end.Sub(start))
	}
}
