// Package tutorapi defines the wire messages of the tutortrack RPC services.
//
// Messages are plain structs encoded as JSON (see JSONCodec). Mutating RPCs
// carry a Warning field that is set when the change was applied but could
// not be saved.
package tutorapi

// Student is a tutoring client.
type Student struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ClassesBought    int     `json:"classesBought"`
	ClassesRemaining int     `json:"classesRemaining"`
	HourlyPrice      float64 `json:"hourlyPrice"`
}

// Entry is one logged session.
type Entry struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	HourlyPrice float64 `json:"hourlyPriceAtThatTime"`
	TotalAmount float64 `json:"totalAmount"`
}

// ScheduleEntry is a recurring weekly class.
type ScheduleEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	EndTime string `json:"endTime,omitempty"`
}

// DaySchedule lists one weekday's classes by start time.
type DaySchedule struct {
	Day     string           `json:"day"`
	Entries []*ScheduleEntry `json:"entries"`
}

// Note is a free-form reminder.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Selection is a student's pending check-in for today.
type Selection struct {
	OptedIn bool    `json:"optedIn"`
	Hours   float64 `json:"hours"`
}

// TodayCard pairs a student with today's selection.
type TodayCard struct {
	Student   *Student   `json:"student"`
	Selection *Selection `json:"selection"`
}

// StudentSummary is one row of a monthly report.
type StudentSummary struct {
	StudentName   string    `json:"studentName"`
	TotalHours    float64   `json:"totalHours"`
	TotalEarnings float64   `json:"totalEarnings"`
	Prices        []float64 `json:"prices"`
}

// Totals sums hours and earnings.
type Totals struct {
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
}

// Report is a monthly earnings summary.
type Report struct {
	Month     string            `json:"month"`
	StudentID string            `json:"studentId,omitempty"`
	Empty     bool              `json:"empty"`
	Rows      []*StudentSummary `json:"rows"`
	Total     *Totals           `json:"total"`
	Day       *Totals           `json:"day,omitempty"`
	Week      *Totals           `json:"week,omitempty"`
}

// Students

type ListStudentsRequest struct{}

type ListStudentsResponse struct {
	Students []*Student `json:"students"`
}

type AddStudentRequest struct {
	Name          string  `json:"name"`
	ClassesBought int     `json:"classesBought"`
	HourlyPrice   float64 `json:"hourlyPrice"`
}

type AddStudentResponse struct {
	Student *Student `json:"student"`
	Warning string   `json:"warning,omitempty"`
}

type UpdateStudentRequest struct {
	StudentID     string  `json:"studentId"`
	Name          string  `json:"name"`
	ClassesBought int     `json:"classesBought"`
	HourlyPrice   float64 `json:"hourlyPrice"`
}

type UpdateStudentResponse struct {
	Student *Student `json:"student"`
	Warning string   `json:"warning,omitempty"`
}

type DeleteStudentRequest struct {
	StudentID string `json:"studentId"`
}

type DeleteStudentResponse struct {
	Warning string `json:"warning,omitempty"`
}

// Entries

type ListRecordsRequest struct{}

type ListRecordsResponse struct {
	Entries []*Entry `json:"entries"`
}

type AddEntryRequest struct {
	StudentID   string  `json:"studentId"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	HourlyPrice float64 `json:"hourlyPrice"`
}

type AddEntryResponse struct {
	Entry   *Entry `json:"entry"`
	Warning string `json:"warning,omitempty"`
}

type UpdateEntryRequest struct {
	EntryID     string  `json:"entryId"`
	StudentID   string  `json:"studentId"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	HourlyPrice float64 `json:"hourlyPrice"`
}

type UpdateEntryResponse struct {
	Entry   *Entry `json:"entry"`
	Warning string `json:"warning,omitempty"`
}

type DeleteEntryRequest struct {
	EntryID string `json:"entryId"`
}

type DeleteEntryResponse struct {
	Warning string `json:"warning,omitempty"`
}

// Schedule

type GetScheduleRequest struct{}

type GetScheduleResponse struct {
	Days []*DaySchedule `json:"days"`
}

// UpsertScheduleEntryRequest creates a class when ID is empty.
type UpsertScheduleEntryRequest struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	EndTime string `json:"endTime,omitempty"`
}

type UpsertScheduleEntryResponse struct {
	Entry   *ScheduleEntry `json:"entry"`
	Warning string         `json:"warning,omitempty"`
}

type DeleteScheduleEntryRequest struct {
	ID string `json:"id"`
}

type DeleteScheduleEntryResponse struct {
	Warning string `json:"warning,omitempty"`
}

// Notes

type ListNotesRequest struct{}

type ListNotesResponse struct {
	Notes []*Note `json:"notes"`
}

type AddNoteRequest struct {
	Text string `json:"text"`
}

type AddNoteResponse struct {
	Note    *Note  `json:"note"`
	Warning string `json:"warning,omitempty"`
}

type UpdateNoteRequest struct {
	NoteID string `json:"noteId"`
	Text   string `json:"text"`
}

type UpdateNoteResponse struct {
	Note    *Note  `json:"note"`
	Warning string `json:"warning,omitempty"`
}

type ToggleNoteRequest struct {
	NoteID string `json:"noteId"`
}

type ToggleNoteResponse struct {
	Note    *Note  `json:"note"`
	Warning string `json:"warning,omitempty"`
}

type DeleteNoteRequest struct {
	NoteID string `json:"noteId"`
}

type DeleteNoteResponse struct {
	Warning string `json:"warning,omitempty"`
}

// Today

type GetTodayRequest struct{}

type GetTodayResponse struct {
	Date  string       `json:"date"`
	Cards []*TodayCard `json:"cards"`
}

type SetSelectionRequest struct {
	StudentID string  `json:"studentId"`
	OptedIn   bool    `json:"optedIn"`
	Hours     float64 `json:"hours"`
}

type SetSelectionResponse struct {
	Selection *Selection `json:"selection"`
}

type ConfirmTodayRequest struct{}

type ConfirmTodayResponse struct {
	Date       string   `json:"date"`
	Created    []*Entry `json:"created"`
	Duplicates []string `json:"duplicates"`
	Warning    string   `json:"warning,omitempty"`
}

// Reports

// GetReportRequest selects a month (YYYY-MM, current month when empty) and an
// optional student.
type GetReportRequest struct {
	Month     string `json:"month,omitempty"`
	StudentID string `json:"studentId,omitempty"`
	Breakdown bool   `json:"breakdown,omitempty"`
}

type GetReportResponse struct {
	Report *Report `json:"report"`
}

// Auth

type UnlockRequest struct {
	Passcode string `json:"passcode"`
}

type UnlockResponse struct {
	Token string `json:"token"`
	// ExpiresAt is a Unix timestamp in seconds.
	ExpiresAt int64 `json:"expiresAt"`
}
