package tracker

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

// Entries returns every entry in insertion order.
func (t *Tracker) Entries() []models.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.snap.Entries)
}

// Records returns every entry, newest date first. Entries on the same date
// keep insertion order.
func (t *Tracker) Records() []models.Entry {
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b models.Entry) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return entries
}

// AddEntry logs a session by hand. It does not touch the student's class
// balance; only confirmed check-ins consume classes.
func (t *Tracker) AddEntry(ctx context.Context, in models.EntryInput) (entry models.Entry, err error) {
	defer func() { t.observe("add_entry", err) }()

	if verr := validateInput(in); verr != nil {
		return models.Entry{}, verr
	}
	total, verr := entryTotal(in.Hours, in.HourlyPrice)
	if verr != nil {
		return models.Entry{}, verr
	}

	t.mu.Lock()
	i := t.studentIndex(in.StudentID)
	if i < 0 {
		t.mu.Unlock()
		return models.Entry{}, &NotFoundError{Kind: "student", ID: in.StudentID}
	}
	student := t.snap.Students[i]
	if t.hasEntryLocked(in.StudentID, in.Date, "") {
		t.mu.Unlock()
		return models.Entry{}, entryConflict(student.Name, in.Date)
	}

	entry = models.Entry{
		ID:          t.newID(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Date:        in.Date,
		Hours:       in.Hours,
		HourlyPrice: in.HourlyPrice,
		TotalAmount: total,
	}
	t.snap.Entries = append(t.snap.Entries, entry)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Entry added",
		"entry_id", entry.ID,
		"student_id", entry.StudentID,
		"date", entry.Date,
		"total", entry.TotalAmount,
	)

	return entry, t.persist(ctx, "add_entry", version, snap)
}

// UpdateEntry edits an entry. The name snapshot is refreshed from the
// referenced student; an entry whose student was deleted may still be edited
// as long as it keeps that student id, and then keeps its stored name.
func (t *Tracker) UpdateEntry(ctx context.Context, id string, in models.EntryInput) (entry models.Entry, err error) {
	defer func() { t.observe("update_entry", err) }()

	if verr := validateInput(in); verr != nil {
		return models.Entry{}, verr
	}
	total, verr := entryTotal(in.Hours, in.HourlyPrice)
	if verr != nil {
		return models.Entry{}, verr
	}

	t.mu.Lock()
	ei := t.entryIndex(id)
	if ei < 0 {
		t.mu.Unlock()
		return models.Entry{}, &NotFoundError{Kind: "entry", ID: id}
	}
	entry = t.snap.Entries[ei]

	name := entry.StudentName
	if si := t.studentIndex(in.StudentID); si >= 0 {
		name = t.snap.Students[si].Name
	} else if in.StudentID != entry.StudentID {
		t.mu.Unlock()
		return models.Entry{}, &NotFoundError{Kind: "student", ID: in.StudentID}
	}
	if t.hasEntryLocked(in.StudentID, in.Date, id) {
		t.mu.Unlock()
		return models.Entry{}, entryConflict(name, in.Date)
	}

	entry.StudentID = in.StudentID
	entry.StudentName = name
	entry.Date = in.Date
	entry.Hours = in.Hours
	entry.HourlyPrice = in.HourlyPrice
	entry.TotalAmount = total
	t.snap.Entries[ei] = entry
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Entry updated", "entry_id", entry.ID, "date", entry.Date, "total", entry.TotalAmount)

	return entry, t.persist(ctx, "update_entry", version, snap)
}

// DeleteEntry removes one entry. The student's class balance is not restored.
func (t *Tracker) DeleteEntry(ctx context.Context, id string) (err error) {
	defer func() { t.observe("delete_entry", err) }()

	t.mu.Lock()
	i := t.entryIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return &NotFoundError{Kind: "entry", ID: id}
	}
	t.snap.Entries = slices.Delete(t.snap.Entries, i, i+1)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Entry deleted", "entry_id", id)

	return t.persist(ctx, "delete_entry", version, snap)
}

func (t *Tracker) entryIndex(id string) int {
	return slices.IndexFunc(t.snap.Entries, func(e models.Entry) bool {
		return e.ID == id
	})
}

// hasEntryLocked reports whether the student already has an entry on date,
// ignoring the entry with id except. Caller holds t.mu.
func (t *Tracker) hasEntryLocked(studentID, date, except string) bool {
	return slices.ContainsFunc(t.snap.Entries, func(e models.Entry) bool {
		return e.ID != except && e.StudentID == studentID && e.Date == date
	})
}

// entryTotal prices a session, rejecting totals that cannot be stored.
func entryTotal(hours, price float64) (float64, error) {
	total, err := calculator.EntryTotal(hours, price)
	if err != nil {
		return 0, &ValidationError{Field: "hours", Reason: err.Error()}
	}
	return total, nil
}

func entryConflict(name, date string) *ConflictError {
	return &ConflictError{Kind: "entry", Slot: fmt.Sprintf("%s on %s", name, date)}
}
