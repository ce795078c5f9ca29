package tracker

import (
	"context"
	"slices"
	"strings"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

// Students returns every student in insertion order.
func (t *Tracker) Students() []models.Student {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.snap.Students)
}

// Student returns one student by id.
func (t *Tracker) Student(id string) (models.Student, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.studentIndex(id)
	if i < 0 {
		return models.Student{}, &NotFoundError{Kind: "student", ID: id}
	}
	return t.snap.Students[i], nil
}

// AddStudent creates a student with a full class package.
func (t *Tracker) AddStudent(ctx context.Context, in models.StudentInput) (student models.Student, err error) {
	defer func() { t.observe("add_student", err) }()

	in.Name = strings.TrimSpace(in.Name)
	if verr := validateInput(in); verr != nil {
		return models.Student{}, verr
	}

	t.mu.Lock()
	student = models.Student{
		ID:               t.newID(),
		Name:             in.Name,
		ClassesBought:    in.ClassesBought,
		ClassesRemaining: in.ClassesBought,
		HourlyPrice:      in.HourlyPrice,
	}
	t.snap.Students = append(t.snap.Students, student)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Student added",
		"student_id", student.ID,
		"name", student.Name,
		"classes_bought", student.ClassesBought,
	)

	return student, t.persist(ctx, "add_student", version, snap)
}

// UpdateStudent edits a student. Classes already used under the old package
// carry over to the new package size. Existing entries keep their name snapshot.
func (t *Tracker) UpdateStudent(ctx context.Context, id string, in models.StudentInput) (student models.Student, err error) {
	defer func() { t.observe("update_student", err) }()

	in.Name = strings.TrimSpace(in.Name)
	if verr := validateInput(in); verr != nil {
		return models.Student{}, verr
	}

	t.mu.Lock()
	i := t.studentIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return models.Student{}, &NotFoundError{Kind: "student", ID: id}
	}
	old := t.snap.Students[i]
	student = models.Student{
		ID:               old.ID,
		Name:             in.Name,
		ClassesBought:    in.ClassesBought,
		ClassesRemaining: calculator.RebalanceClasses(old.ClassesBought, old.ClassesRemaining, in.ClassesBought),
		HourlyPrice:      in.HourlyPrice,
	}
	t.snap.Students[i] = student
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Student updated",
		"student_id", student.ID,
		"classes_bought", student.ClassesBought,
		"classes_remaining", student.ClassesRemaining,
	)

	return student, t.persist(ctx, "update_student", version, snap)
}

// DeleteStudent removes a student and any pending check-in for them. Their
// historical entries are kept.
func (t *Tracker) DeleteStudent(ctx context.Context, id string) (err error) {
	defer func() { t.observe("delete_student", err) }()

	t.mu.Lock()
	i := t.studentIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return &NotFoundError{Kind: "student", ID: id}
	}
	t.snap.Students = slices.Delete(t.snap.Students, i, i+1)
	delete(t.selections, id)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Student deleted", "student_id", id)

	return t.persist(ctx, "delete_student", version, snap)
}

// studentIndex returns the position of a student, or -1. Caller holds t.mu.
func (t *Tracker) studentIndex(id string) int {
	return slices.IndexFunc(t.snap.Students, func(s models.Student) bool {
		return s.ID == id
	})
}
