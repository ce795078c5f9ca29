package models

// Note is a free-form reminder. Notes are kept newest first.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NoteInput carries the editable text of a note.
type NoteInput struct {
	Text string `json:"text" validate:"required"`
}
