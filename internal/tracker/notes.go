package tracker

import (
	"context"
	"slices"
	"strings"

	"github.com/mmynk/tutortrack/internal/models"
)

// Notes returns every note, newest first.
func (t *Tracker) Notes() []models.Note {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.snap.Notes)
}

// AddNote puts a new note at the top of the list.
func (t *Tracker) AddNote(ctx context.Context, in models.NoteInput) (note models.Note, err error) {
	defer func() { t.observe("add_note", err) }()

	in.Text = strings.TrimSpace(in.Text)
	if verr := validateInput(in); verr != nil {
		return models.Note{}, verr
	}

	t.mu.Lock()
	note = models.Note{ID: t.newID(), Text: in.Text}
	t.snap.Notes = slices.Insert(t.snap.Notes, 0, note)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Note added", "note_id", note.ID)

	return note, t.persist(ctx, "add_note", version, snap)
}

// UpdateNoteText replaces a note's text in place.
func (t *Tracker) UpdateNoteText(ctx context.Context, id string, in models.NoteInput) (note models.Note, err error) {
	defer func() { t.observe("update_note", err) }()

	in.Text = strings.TrimSpace(in.Text)
	if verr := validateInput(in); verr != nil {
		return models.Note{}, verr
	}

	return t.editNote(ctx, "update_note", id, func(n *models.Note) {
		n.Text = in.Text
	})
}

// ToggleNoteDone flips a note's done flag.
func (t *Tracker) ToggleNoteDone(ctx context.Context, id string) (note models.Note, err error) {
	defer func() { t.observe("toggle_note", err) }()

	return t.editNote(ctx, "toggle_note", id, func(n *models.Note) {
		n.Done = !n.Done
	})
}

// DeleteNote removes a note.
func (t *Tracker) DeleteNote(ctx context.Context, id string) (err error) {
	defer func() { t.observe("delete_note", err) }()

	t.mu.Lock()
	i := t.noteIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return &NotFoundError{Kind: "note", ID: id}
	}
	t.snap.Notes = slices.Delete(t.snap.Notes, i, i+1)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Note deleted", "note_id", id)

	return t.persist(ctx, "delete_note", version, snap)
}

func (t *Tracker) editNote(ctx context.Context, op, id string, edit func(*models.Note)) (models.Note, error) {
	t.mu.Lock()
	i := t.noteIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return models.Note{}, &NotFoundError{Kind: "note", ID: id}
	}
	edit(&t.snap.Notes[i])
	note := t.snap.Notes[i]
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Note updated", "note_id", id, "done", note.Done)

	return note, t.persist(ctx, op, version, snap)
}

func (t *Tracker) noteIndex(id string) int {
	return slices.IndexFunc(t.snap.Notes, func(n models.Note) bool {
		return n.ID == id
	})
}
