package tracker

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input to a mutator.
type ValidationError struct {
	// Field is the JSON name of the offending field.
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an id that is no longer present.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ConflictError reports a write that would break a uniqueness rule: a taken
// schedule slot, or a second entry for the same student on the same day.
type ConflictError struct {
	Kind string
	Slot string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already taken: %s", e.Kind, e.Slot)
}

// PersistenceError reports a failed snapshot load or save. When returned from
// a mutator alongside a value, the change was applied in memory but may not
// be saved.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s snapshot: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsSaveWarning reports whether err only signals that an applied change could
// not be written to storage.
func IsSaveWarning(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Op == "save"
}

// outcome classifies an error for metrics labels.
func outcome(err error) string {
	var (
		ve *ValidationError
		nf *NotFoundError
		ce *ConflictError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "invalid"
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &ce):
		return "conflict"
	case IsSaveWarning(err):
		return "unsaved"
	default:
		return "error"
	}
}
