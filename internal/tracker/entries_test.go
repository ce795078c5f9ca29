package tracker

import (
	"context"
	"math"
	"testing"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

func TestAddEntry(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 4, 50)

	tests := []struct {
		name      string
		input     models.EntryInput
		wantField string
	}{
		{name: "Missing student", input: models.EntryInput{Date: "2026-03-01", Hours: 1, HourlyPrice: 50}, wantField: "studentId"},
		{name: "Bad date", input: models.EntryInput{StudentID: alice.ID, Date: "03/01/2026", Hours: 1, HourlyPrice: 50}, wantField: "date"},
		{name: "Impossible date", input: models.EntryInput{StudentID: alice.ID, Date: "2026-02-30", Hours: 1, HourlyPrice: 50}, wantField: "date"},
		{name: "Zero hours", input: models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 0, HourlyPrice: 50}, wantField: "hours"},
		{name: "Negative price", input: models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: -5}, wantField: "hourlyPrice"},
		{name: "Too many hours", input: models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 1e200, HourlyPrice: 50}, wantField: "hours"},
		{name: "Price too high", input: models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: 1e200}, wantField: "hourlyPrice"},
		{name: "Infinite hours", input: models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: math.Inf(1), HourlyPrice: 50}, wantField: "hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tracker.AddEntry(ctx, tt.input)
			assertValidation(t, err, tt.wantField)
		})
	}

	t.Run("Unknown student", func(t *testing.T) {
		_, err := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: "nobody", Date: "2026-03-01", Hours: 1, HourlyPrice: 50})
		assertNotFound(t, err)
	})

	t.Run("Odd hours accepted and total recomputed", func(t *testing.T) {
		e, err := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-02", Hours: 1.1, HourlyPrice: 3})
		if err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
		if math.Abs(e.TotalAmount-3.3) > 0.01 {
			t.Errorf("TotalAmount = %.4f, want 3.3", e.TotalAmount)
		}
		if e.StudentName != "Alice" {
			t.Errorf("StudentName = %q, want Alice", e.StudentName)
		}
		if s, _ := env.tracker.Student(alice.ID); s.ClassesRemaining != 4 {
			t.Errorf("manual entry consumed a class: remaining %d", s.ClassesRemaining)
		}
	})

	t.Run("Second entry same day conflicts", func(t *testing.T) {
		_, err := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-02", Hours: 2, HourlyPrice: 50})
		assertConflict(t, err)
	})
}

func TestAddEntry_OversizedInputKeepsStoreWritable(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 4, 50)

	_, err := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-02", Hours: 1e200, HourlyPrice: 1e200})
	assertValidation(t, err, "hours")
	e, err := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-03", Hours: 1, HourlyPrice: 50})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	_, err = env.tracker.UpdateEntry(ctx, e.ID, models.EntryInput{StudentID: alice.ID, Date: "2026-03-03", Hours: 24, HourlyPrice: 1e200})
	assertValidation(t, err, "hourlyPrice")

	if _, err := env.tracker.AddNote(ctx, models.NoteInput{Text: "still saving"}); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if env.tracker.Unsaved() {
		t.Error("expected storage to be up to date")
	}
	if got := env.reload(t).Entries; len(got) != 1 || got[0].TotalAmount != 50 {
		t.Errorf("persisted entries = %+v", got)
	}

	r := env.tracker.Report(calculator.ReportQuery{Month: testNow})
	if r.Total.Earnings != 50 {
		t.Errorf("report earnings = %v, want 50", r.Total.Earnings)
	}
}

func TestUpdateEntry(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 0, 50)
	bob := mustAddStudent(t, env.tracker, "Bob", 0, 30)

	e1, _ := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: 50})
	e2, _ := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: bob.ID, Date: "2026-03-02", Hours: 1, HourlyPrice: 30})

	t.Run("Recomputes total and name", func(t *testing.T) {
		got, err := env.tracker.UpdateEntry(ctx, e1.ID, models.EntryInput{StudentID: bob.ID, Date: "2026-03-03", Hours: 2, HourlyPrice: 35})
		if err != nil {
			t.Fatalf("UpdateEntry failed: %v", err)
		}
		if got.ID != e1.ID || got.StudentName != "Bob" || got.Date != "2026-03-03" {
			t.Errorf("unexpected entry %+v", got)
		}
		if math.Abs(got.TotalAmount-70) > 0.01 {
			t.Errorf("TotalAmount = %.2f, want 70", got.TotalAmount)
		}
	})

	t.Run("Moving onto a taken day conflicts", func(t *testing.T) {
		_, err := env.tracker.UpdateEntry(ctx, e1.ID, models.EntryInput{StudentID: bob.ID, Date: e2.Date, Hours: 1, HourlyPrice: 30})
		assertConflict(t, err)
	})

	t.Run("Keeping its own day is fine", func(t *testing.T) {
		if _, err := env.tracker.UpdateEntry(ctx, e2.ID, models.EntryInput{StudentID: bob.ID, Date: e2.Date, Hours: 1.5, HourlyPrice: 30}); err != nil {
			t.Fatalf("UpdateEntry failed: %v", err)
		}
	})

	t.Run("Unknown entry", func(t *testing.T) {
		_, err := env.tracker.UpdateEntry(ctx, "nope", models.EntryInput{StudentID: bob.ID, Date: "2026-03-09", Hours: 1, HourlyPrice: 30})
		assertNotFound(t, err)
	})

	t.Run("Unknown student", func(t *testing.T) {
		_, err := env.tracker.UpdateEntry(ctx, e2.ID, models.EntryInput{StudentID: "ghost", Date: "2026-03-09", Hours: 1, HourlyPrice: 30})
		assertNotFound(t, err)
	})
}

func TestUpdateEntry_DeletedStudentKeepsName(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 0, 50)
	e, _ := env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: 50})

	if err := env.tracker.DeleteStudent(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteStudent failed: %v", err)
	}

	got, err := env.tracker.UpdateEntry(ctx, e.ID, models.EntryInput{StudentID: alice.ID, Date: "2026-03-01", Hours: 2, HourlyPrice: 50})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if got.StudentName != "Alice" || math.Abs(got.TotalAmount-100) > 0.01 {
		t.Errorf("unexpected entry %+v", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 4, 50)
	env.tracker.SetSelection(alice.ID, true, 1)
	result, _ := env.tracker.ConfirmToday(ctx)

	if err := env.tracker.DeleteEntry(ctx, result.Created[0].ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if n := len(env.tracker.Entries()); n != 0 {
		t.Errorf("expected no entries, got %d", n)
	}
	if s, _ := env.tracker.Student(alice.ID); s.ClassesRemaining != 3 {
		t.Errorf("ClassesRemaining = %d, want 3 (delete does not refund)", s.ClassesRemaining)
	}

	assertNotFound(t, env.tracker.DeleteEntry(ctx, result.Created[0].ID))
}

func TestRecords_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	alice := mustAddStudent(t, env.tracker, "Alice", 0, 50)
	bob := mustAddStudent(t, env.tracker, "Bob", 0, 30)

	for _, in := range []models.EntryInput{
		{StudentID: alice.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: 50},
		{StudentID: alice.ID, Date: "2026-03-10", Hours: 1, HourlyPrice: 50},
		{StudentID: bob.ID, Date: "2026-03-01", Hours: 1, HourlyPrice: 30},
		{StudentID: bob.ID, Date: "2026-02-20", Hours: 1, HourlyPrice: 30},
	} {
		if _, err := env.tracker.AddEntry(ctx, in); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}

	records := env.tracker.Records()
	want := []struct{ date, name string }{
		{"2026-03-10", "Alice"},
		{"2026-03-01", "Alice"},
		{"2026-03-01", "Bob"},
		{"2026-02-20", "Bob"},
	}
	for i, w := range want {
		if records[i].Date != w.date || records[i].StudentName != w.name {
			t.Errorf("records[%d] = %s %s, want %s %s", i, records[i].Date, records[i].StudentName, w.date, w.name)
		}
	}

	// Entries keeps insertion order
	if env.tracker.Entries()[0].Date != "2026-03-01" {
		t.Error("Records must not reorder the stored entries")
	}
}
