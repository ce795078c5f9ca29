package service

import (
	"github.com/mmynk/tutortrack/internal/models"
	"github.com/mmynk/tutortrack/pkg/tutorapi"
)

func toAPIStudent(s models.Student) *tutorapi.Student {
	return &tutorapi.Student{
		ID:               s.ID,
		Name:             s.Name,
		ClassesBought:    s.ClassesBought,
		ClassesRemaining: s.ClassesRemaining,
		HourlyPrice:      s.HourlyPrice,
	}
}

func toAPIEntry(e models.Entry) *tutorapi.Entry {
	return &tutorapi.Entry{
		ID:          e.ID,
		StudentID:   e.StudentID,
		StudentName: e.StudentName,
		Date:        e.Date,
		Hours:       e.Hours,
		HourlyPrice: e.HourlyPrice,
		TotalAmount: e.TotalAmount,
	}
}

func toAPIEntries(entries []models.Entry) []*tutorapi.Entry {
	out := make([]*tutorapi.Entry, len(entries))
	for i, e := range entries {
		out[i] = toAPIEntry(e)
	}
	return out
}

func toAPIScheduleEntry(e models.ScheduleEntry) *tutorapi.ScheduleEntry {
	return &tutorapi.ScheduleEntry{
		ID:      e.ID,
		Name:    e.Name,
		Day:     e.Day,
		Time:    e.Time,
		EndTime: e.EndTime,
	}
}

func toAPINote(n models.Note) *tutorapi.Note {
	return &tutorapi.Note{ID: n.ID, Text: n.Text, Done: n.Done}
}

func toAPISelection(s models.Selection) *tutorapi.Selection {
	return &tutorapi.Selection{OptedIn: s.OptedIn, Hours: s.Hours}
}

func toAPITotals(t *models.Totals) *tutorapi.Totals {
	if t == nil {
		return nil
	}
	return &tutorapi.Totals{Hours: t.Hours, Earnings: t.Earnings}
}

func toAPIReport(r models.Report) *tutorapi.Report {
	rows := make([]*tutorapi.StudentSummary, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = &tutorapi.StudentSummary{
			StudentName:   row.StudentName,
			TotalHours:    row.TotalHours,
			TotalEarnings: row.TotalEarnings,
			Prices:        row.Prices,
		}
	}
	return &tutorapi.Report{
		Month:     r.Month,
		StudentID: r.StudentID,
		Empty:     r.Empty,
		Rows:      rows,
		Total:     toAPITotals(&r.Total),
		Day:       toAPITotals(r.Day),
		Week:      toAPITotals(r.Week),
	}
}
