package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mmynk/tutortrack/internal/models"
)

// ScheduleFilename is the suggested download name of the schedule feed.
const ScheduleFilename = "tutortrack-schedule.ics"

// floatingLayout is an iCalendar local date-time without a zone, so classes
// keep their wall-clock time across daylight saving changes.
const floatingLayout = "20060102T150405"

// defaultClassLength applies to classes without an end time.
const defaultClassLength = time.Hour

var byDay = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// ScheduleCalendar renders the weekly schedule as an iCalendar document with
// one weekly recurring event per class. Each series starts on the first
// matching weekday on or after now.
func ScheduleCalendar(entries []models.ScheduleEntry, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tutortrack//schedule//EN")
	cal.SetName("Tutoring schedule")

	for _, e := range entries {
		start, end, err := occurrence(e, now)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrGenerateFailed, err)
		}

		event := cal.AddEvent(e.ID + "@tutortrack")
		event.SetDtStampTime(now)
		event.SetSummary(e.Name)
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(floatingLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(floatingLayout))
		event.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+byDay[start.Weekday()])
	}

	return cal.Serialize(), nil
}

// occurrence returns the first start and end of a class on or after now.
func occurrence(e models.ScheduleEntry, now time.Time) (time.Time, time.Time, error) {
	weekday, ok := models.ParseWeekday(e.Day)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("class %s has unknown day %q", e.ID, e.Day)
	}
	clock, err := time.Parse(models.TimeLayout, e.Time)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("class %s has bad start time %q", e.ID, e.Time)
	}

	offset := (int(weekday) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, offset)
	start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())

	end := start.Add(defaultClassLength)
	if e.EndTime != "" {
		endClock, err := time.Parse(models.TimeLayout, e.EndTime)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("class %s has bad end time %q", e.ID, e.EndTime)
		}
		end = time.Date(start.Year(), start.Month(), start.Day(), endClock.Hour(), endClock.Minute(), 0, 0, now.Location())
	}
	return start, end, nil
}
