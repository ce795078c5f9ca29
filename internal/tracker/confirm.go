package tracker

import (
	"context"
	"fmt"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

// selectionLocked returns the student's pending check-in, or the default.
// Caller holds t.mu.
func (t *Tracker) selectionLocked(studentID string) models.Selection {
	if sel, ok := t.selections[studentID]; ok {
		return sel
	}
	return models.DefaultSelection()
}

// SetSelection records whether a student attends today and for how long.
// Selections are not persisted.
func (t *Tracker) SetSelection(studentID string, optedIn bool, hours float64) (models.Selection, error) {
	if !(hours > 0 && hours <= models.MaxSessionHours) {
		return models.Selection{}, &ValidationError{
			Field:  "hours",
			Reason: fmt.Sprintf("must be greater than 0 and at most %d", models.MaxSessionHours),
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.studentIndex(studentID) < 0 {
		return models.Selection{}, &NotFoundError{Kind: "student", ID: studentID}
	}
	sel := models.Selection{OptedIn: optedIn, Hours: hours}
	t.selections[studentID] = sel
	return sel, nil
}

// Selections returns the pending check-in of every current student.
func (t *Tracker) Selections() map[string]models.Selection {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]models.Selection, len(t.snap.Students))
	for _, s := range t.snap.Students {
		out[s.ID] = t.selectionLocked(s.ID)
	}
	return out
}

// TodayView lists every student in insertion order with today's selection.
func (t *Tracker) TodayView() []models.TodayCard {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cards := make([]models.TodayCard, 0, len(t.snap.Students))
	for _, s := range t.snap.Students {
		cards = append(cards, models.TodayCard{Student: s, Selection: t.selectionLocked(s.ID)})
	}
	return cards
}

// ResetSelections clears every pending check-in.
func (t *Tracker) ResetSelections() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.selections)
}

// ConfirmToday turns today's opted-in students into entries.
//
// For each opted-in student, in student order:
// - If they already have an entry dated today, their name is added to
// Duplicates and nothing else happens for them
// - Otherwise one entry is created at their current hourly price for the
// selected hours, and one class is consumed from their balance
//
// Afterwards every selection is reset to the default, whether or not the
// student was confirmed. A duplicate for one student never blocks another.
// When no entry is created the snapshot is not rewritten.
//
// If any opted-in student's session cannot be priced, nothing is created and
// the selections are kept.
func (t *Tracker) ConfirmToday(ctx context.Context) (result models.ConfirmResult, err error) {
	defer func() { t.observe("confirm_today", err) }()

	t.mu.Lock()
	today := t.today()
	result = models.ConfirmResult{
		Date:       today,
		Created:    []models.Entry{},
		Duplicates: []string{},
	}

	type checkIn struct {
		student int
		hours   float64
		total   float64
	}
	var checkIns []checkIn
	for i, student := range t.snap.Students {
		sel := t.selectionLocked(student.ID)
		if !sel.OptedIn {
			continue
		}

		if t.hasEntryLocked(student.ID, today, "") {
			result.Duplicates = append(result.Duplicates, student.Name)
			continue
		}

		total, terr := entryTotal(sel.Hours, student.HourlyPrice)
		if terr != nil {
			t.mu.Unlock()
			return models.ConfirmResult{}, fmt.Errorf("student %s: %w", student.Name, terr)
		}
		checkIns = append(checkIns, checkIn{student: i, hours: sel.Hours, total: total})
	}

	for _, c := range checkIns {
		student := &t.snap.Students[c.student]
		entry := models.Entry{
			ID:          t.newID(),
			StudentID:   student.ID,
			StudentName: student.Name,
			Date:        today,
			Hours:       c.hours,
			HourlyPrice: student.HourlyPrice,
			TotalAmount: c.total,
		}
		t.snap.Entries = append(t.snap.Entries, entry)
		student.ClassesRemaining = calculator.ConsumeClass(student.ClassesRemaining)
		result.Created = append(result.Created, entry)
	}

	clear(t.selections)
	if len(result.Created) == 0 {
		t.mu.Unlock()
		t.metrics.ObserveConfirm(0, len(result.Duplicates))
		t.logger.Info("Today confirmed, nothing to save",
			"date", today,
			"duplicates", len(result.Duplicates),
		)
		return result, nil
	}
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.metrics.ObserveConfirm(len(result.Created), len(result.Duplicates))
	t.logger.Info("Today confirmed",
		"date", today,
		"created", len(result.Created),
		"duplicates", len(result.Duplicates),
	)

	return result, t.persist(ctx, "confirm_today", version, snap)
}
