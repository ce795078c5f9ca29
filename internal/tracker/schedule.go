package tracker

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/mmynk/tutortrack/internal/models"
)

// Schedule returns every recurring class in stored order.
func (t *Tracker) Schedule() []models.ScheduleEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.snap.Schedule)
}

// ScheduleByDay groups the schedule into all seven days, Monday first, each
// sorted by start time. Days without classes are included with no entries.
func (t *Tracker) ScheduleByDay() []models.DaySchedule {
	entries := t.Schedule()

	days := make([]models.DaySchedule, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		ds := models.DaySchedule{Day: day, Entries: []models.ScheduleEntry{}}
		for _, e := range entries {
			if e.Day == day {
				ds.Entries = append(ds.Entries, e)
			}
		}
		slices.SortStableFunc(ds.Entries, func(a, b models.ScheduleEntry) int {
			return cmp.Compare(a.Time, b.Time)
		})
		days = append(days, ds)
	}
	return days
}

// AddScheduleEntry creates a recurring class.
func (t *Tracker) AddScheduleEntry(ctx context.Context, in models.ScheduleInput) (models.ScheduleEntry, error) {
	return t.UpsertScheduleEntry(ctx, "", in)
}

// UpdateScheduleEntry edits an existing recurring class.
func (t *Tracker) UpdateScheduleEntry(ctx context.Context, id string, in models.ScheduleInput) (models.ScheduleEntry, error) {
	if id == "" {
		return models.ScheduleEntry{}, &NotFoundError{Kind: "schedule entry", ID: id}
	}
	return t.UpsertScheduleEntry(ctx, id, in)
}

// UpsertScheduleEntry inserts a class when id is empty, or updates the class
// with that id in place. No two classes may share a (day, start time) slot;
// a class may keep its own slot when edited.
func (t *Tracker) UpsertScheduleEntry(ctx context.Context, id string, in models.ScheduleInput) (entry models.ScheduleEntry, err error) {
	defer func() { t.observe("upsert_schedule", err) }()

	in, verr := normalizeScheduleInput(in)
	if verr != nil {
		return models.ScheduleEntry{}, verr
	}

	t.mu.Lock()
	i := -1
	if id != "" {
		i = t.scheduleIndex(id)
		if i < 0 {
			t.mu.Unlock()
			return models.ScheduleEntry{}, &NotFoundError{Kind: "schedule entry", ID: id}
		}
	}

	taken := slices.ContainsFunc(t.snap.Schedule, func(e models.ScheduleEntry) bool {
		return e.ID != id && e.Day == in.Day && e.Time == in.Time
	})
	if taken {
		t.mu.Unlock()
		return models.ScheduleEntry{}, &ConflictError{Kind: "schedule slot", Slot: in.Day + " " + in.Time}
	}

	entry = models.ScheduleEntry{
		ID:      id,
		Name:    in.Name,
		Day:     in.Day,
		Time:    in.Time,
		EndTime: in.EndTime,
	}
	if i < 0 {
		entry.ID = t.newID()
		t.snap.Schedule = append(t.snap.Schedule, entry)
	} else {
		t.snap.Schedule[i] = entry
	}
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Schedule entry saved",
		"schedule_id", entry.ID,
		"day", entry.Day,
		"time", entry.Time,
		"created", i < 0,
	)

	return entry, t.persist(ctx, "upsert_schedule", version, snap)
}

// DeleteScheduleEntry removes a recurring class.
func (t *Tracker) DeleteScheduleEntry(ctx context.Context, id string) (err error) {
	defer func() { t.observe("delete_schedule", err) }()

	t.mu.Lock()
	i := t.scheduleIndex(id)
	if i < 0 {
		t.mu.Unlock()
		return &NotFoundError{Kind: "schedule entry", ID: id}
	}
	t.snap.Schedule = slices.Delete(t.snap.Schedule, i, i+1)
	version, snap := t.commitLocked()
	t.mu.Unlock()

	t.logger.Info("Schedule entry deleted", "schedule_id", id)

	return t.persist(ctx, "delete_schedule", version, snap)
}

func (t *Tracker) scheduleIndex(id string) int {
	return slices.IndexFunc(t.snap.Schedule, func(e models.ScheduleEntry) bool {
		return e.ID == id
	})
}

// normalizeScheduleInput validates the input and rewrites times as zero-padded
// HH:MM so slots compare and sort as strings.
func normalizeScheduleInput(in models.ScheduleInput) (models.ScheduleInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.EndTime = strings.TrimSpace(in.EndTime)
	if err := validateInput(in); err != nil {
		return in, err
	}

	start, _ := time.Parse(models.TimeLayout, in.Time)
	in.Time = start.Format(models.TimeLayout)

	if in.EndTime != "" {
		end, _ := time.Parse(models.TimeLayout, in.EndTime)
		if !end.After(start) {
			return in, &ValidationError{Field: "endTime", Reason: "must be later than time"}
		}
		in.EndTime = end.Format(models.TimeLayout)
	}
	return in, nil
}
