package tracker

import (
	"context"
	"testing"

	"github.com/mmynk/tutortrack/internal/models"
)

func TestNotes(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	first, err := env.tracker.AddNote(ctx, models.NoteInput{Text: "buy markers"})
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	second, err := env.tracker.AddNote(ctx, models.NoteInput{Text: " call parents "})
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	t.Run("Newest first", func(t *testing.T) {
		notes := env.tracker.Notes()
		if len(notes) != 2 || notes[0].ID != second.ID || notes[1].ID != first.ID {
			t.Errorf("Notes() = %+v", notes)
		}
		if notes[0].Text != "call parents" {
			t.Errorf("Text = %q, want trimmed", notes[0].Text)
		}
	})

	t.Run("Empty text rejected", func(t *testing.T) {
		_, err := env.tracker.AddNote(ctx, models.NoteInput{Text: "  "})
		assertValidation(t, err, "text")

		_, err = env.tracker.UpdateNoteText(ctx, first.ID, models.NoteInput{})
		assertValidation(t, err, "text")
	})

	t.Run("Toggle done twice", func(t *testing.T) {
		n, err := env.tracker.ToggleNoteDone(ctx, first.ID)
		if err != nil || !n.Done {
			t.Fatalf("ToggleNoteDone = %+v, %v", n, err)
		}
		n, err = env.tracker.ToggleNoteDone(ctx, first.ID)
		if err != nil || n.Done {
			t.Fatalf("ToggleNoteDone = %+v, %v", n, err)
		}
	})

	t.Run("Edit in place", func(t *testing.T) {
		n, err := env.tracker.UpdateNoteText(ctx, first.ID, models.NoteInput{Text: "buy red markers"})
		if err != nil {
			t.Fatalf("UpdateNoteText failed: %v", err)
		}
		if n.Text != "buy red markers" {
			t.Errorf("Text = %q", n.Text)
		}
		if env.tracker.Notes()[1].ID != first.ID {
			t.Error("editing must not move the note")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := env.tracker.DeleteNote(ctx, second.ID); err != nil {
			t.Fatalf("DeleteNote failed: %v", err)
		}
		if notes := env.reload(t).Notes; len(notes) != 1 || notes[0].ID != first.ID {
			t.Errorf("persisted notes = %+v", notes)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := env.tracker.ToggleNoteDone(ctx, "missing")
		assertNotFound(t, err)
		_, err = env.tracker.UpdateNoteText(ctx, "missing", models.NoteInput{Text: "x"})
		assertNotFound(t, err)
		assertNotFound(t, env.tracker.DeleteNote(ctx, "missing"))
	})
}
