package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
)

// rawSnapshot mirrors the persisted blob with every field optional, so older
// snapshots decode without error.
type rawSnapshot struct {
	Students []rawStudent           `json:"students"`
	Entries  []rawEntry             `json:"entries"`
	Schedule []models.ScheduleEntry `json:"schedule"`
	Notes    []models.Note          `json:"notes"`
}

type rawStudent struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ClassesBought    *float64 `json:"classesBought"`
	ClassesRemaining *float64 `json:"classesRemaining"`
	HourlyPrice      float64  `json:"hourlyPrice"`
}

type rawEntry struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	HourlyPrice float64 `json:"hourlyPriceAtThatTime"`
}

// Decode parses a snapshot blob and normalizes it.
func Decode(blob []byte) (*models.Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return normalize(raw), nil
}

// normalize turns a decoded blob into a fully populated snapshot. It runs
// once at load time so business logic never sees missing fields:
//   - missing collections become empty
//   - missing classesBought becomes 0
//   - missing classesRemaining becomes classesBought
//   - negative balances are clamped to 0
//   - entry totals are recomputed from hours and price
//   - entries whose total overflows a float64 are dropped
//   - entities without an id get one
func normalize(raw rawSnapshot) *models.Snapshot {
	snap := models.EmptySnapshot()

	for _, rs := range raw.Students {
		bought := 0
		if rs.ClassesBought != nil {
			bought = max(0, int(*rs.ClassesBought))
		}
		remaining := bought
		if rs.ClassesRemaining != nil {
			remaining = max(0, int(*rs.ClassesRemaining))
		}
		snap.Students = append(snap.Students, models.Student{
			ID:               ensureID(rs.ID),
			Name:             rs.Name,
			ClassesBought:    bought,
			ClassesRemaining: remaining,
			HourlyPrice:      rs.HourlyPrice,
		})
	}

	for _, re := range raw.Entries {
		total, err := calculator.EntryTotal(re.Hours, re.HourlyPrice)
		if err != nil {
			continue
		}
		snap.Entries = append(snap.Entries, models.Entry{
			ID:          ensureID(re.ID),
			StudentID:   re.StudentID,
			StudentName: re.StudentName,
			Date:        re.Date,
			Hours:       re.Hours,
			HourlyPrice: re.HourlyPrice,
			TotalAmount: total,
		})
	}

	for _, se := range raw.Schedule {
		se.ID = ensureID(se.ID)
		snap.Schedule = append(snap.Schedule, se)
	}

	for _, n := range raw.Notes {
		n.ID = ensureID(n.ID)
		snap.Notes = append(snap.Notes, n)
	}

	return snap
}

func ensureID(id string) string {
	if strings.TrimSpace(id) == "" {
		return uuid.New().String()
	}
	return id
}
