package models

// Snapshot is the whole persisted domain state. It is always loaded and
// saved as one unit.
type Snapshot struct {
	Students []Student       `json:"students"`
	Entries  []Entry         `json:"entries"`
	Schedule []ScheduleEntry `json:"schedule"`
	Notes    []Note          `json:"notes"`
}

// EmptySnapshot returns a snapshot with every collection initialized so the
// JSON encoder emits [] instead of null.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Students: []Student{},
		Entries:  []Entry{},
		Schedule: []ScheduleEntry{},
		Notes:    []Note{},
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return EmptySnapshot()
	}
	return &Snapshot{
		Students: append([]Student{}, s.Students...),
		Entries:  append([]Entry{}, s.Entries...),
		Schedule: append([]ScheduleEntry{}, s.Schedule...),
		Notes:    append([]Note{}, s.Notes...),
	}
}
