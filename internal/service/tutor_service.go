package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/calculator"
	"github.com/mmynk/tutortrack/internal/models"
	"github.com/mmynk/tutortrack/internal/tracker"
	"github.com/mmynk/tutortrack/pkg/tutorapi"
	"github.com/mmynk/tutortrack/pkg/tutorapi/tutorapiconnect"
)

// TutorService implements the Connect TutorService on top of a Tracker.
type TutorService struct {
	tutorapiconnect.UnimplementedTutorServiceHandler
	tracker   *tracker.Tracker
	breakdown bool
	logger    *slog.Logger
}

// NewTutorService creates a TutorService. When breakdown is set every report
// includes day and week sub-totals.
func NewTutorService(tr *tracker.Tracker, breakdown bool, logger *slog.Logger) *TutorService {
	return &TutorService{tracker: tr, breakdown: breakdown, logger: logger}
}

// ListStudents returns every student in insertion order.
func (s *TutorService) ListStudents(ctx context.Context, req *connect.Request[tutorapi.ListStudentsRequest]) (*connect.Response[tutorapi.ListStudentsResponse], error) {
	students := s.tracker.Students()

	out := make([]*tutorapi.Student, len(students))
	for i, st := range students {
		out[i] = toAPIStudent(st)
	}

	return connect.NewResponse(&tutorapi.ListStudentsResponse{Students: out}), nil
}

// AddStudent creates a student.
func (s *TutorService) AddStudent(ctx context.Context, req *connect.Request[tutorapi.AddStudentRequest]) (*connect.Response[tutorapi.AddStudentResponse], error) {
	s.logger.Info("AddStudent request received",
		"name", req.Msg.Name,
		"classes_bought", req.Msg.ClassesBought,
	)

	student, err := s.tracker.AddStudent(ctx, models.StudentInput{
		Name:          req.Msg.Name,
		ClassesBought: req.Msg.ClassesBought,
		HourlyPrice:   req.Msg.HourlyPrice,
	})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("AddStudent failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.AddStudentResponse{
		Student: toAPIStudent(student),
		Warning: warning,
	}), nil
}

// UpdateStudent edits a student, carrying used classes over to the new package.
func (s *TutorService) UpdateStudent(ctx context.Context, req *connect.Request[tutorapi.UpdateStudentRequest]) (*connect.Response[tutorapi.UpdateStudentResponse], error) {
	s.logger.Info("UpdateStudent request received", "student_id", req.Msg.StudentID)

	student, err := s.tracker.UpdateStudent(ctx, req.Msg.StudentID, models.StudentInput{
		Name:          req.Msg.Name,
		ClassesBought: req.Msg.ClassesBought,
		HourlyPrice:   req.Msg.HourlyPrice,
	})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("UpdateStudent failed", "student_id", req.Msg.StudentID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.UpdateStudentResponse{
		Student: toAPIStudent(student),
		Warning: warning,
	}), nil
}

// DeleteStudent removes a student. Their entries are kept.
func (s *TutorService) DeleteStudent(ctx context.Context, req *connect.Request[tutorapi.DeleteStudentRequest]) (*connect.Response[tutorapi.DeleteStudentResponse], error) {
	s.logger.Info("DeleteStudent request received", "student_id", req.Msg.StudentID)

	warning, err := splitMutationError(s.tracker.DeleteStudent(ctx, req.Msg.StudentID))
	if err != nil {
		s.logger.Warn("DeleteStudent failed", "student_id", req.Msg.StudentID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.DeleteStudentResponse{Warning: warning}), nil
}

// ListRecords returns every entry, newest first.
func (s *TutorService) ListRecords(ctx context.Context, req *connect.Request[tutorapi.ListRecordsRequest]) (*connect.Response[tutorapi.ListRecordsResponse], error) {
	return connect.NewResponse(&tutorapi.ListRecordsResponse{
		Entries: toAPIEntries(s.tracker.Records()),
	}), nil
}

// AddEntry logs a session by hand.
func (s *TutorService) AddEntry(ctx context.Context, req *connect.Request[tutorapi.AddEntryRequest]) (*connect.Response[tutorapi.AddEntryResponse], error) {
	s.logger.Info("AddEntry request received",
		"student_id", req.Msg.StudentID,
		"date", req.Msg.Date,
	)

	entry, err := s.tracker.AddEntry(ctx, models.EntryInput{
		StudentID:   req.Msg.StudentID,
		Date:        req.Msg.Date,
		Hours:       req.Msg.Hours,
		HourlyPrice: req.Msg.HourlyPrice,
	})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("AddEntry failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.AddEntryResponse{
		Entry:   toAPIEntry(entry),
		Warning: warning,
	}), nil
}

// UpdateEntry edits an entry and recomputes its total.
func (s *TutorService) UpdateEntry(ctx context.Context, req *connect.Request[tutorapi.UpdateEntryRequest]) (*connect.Response[tutorapi.UpdateEntryResponse], error) {
	s.logger.Info("UpdateEntry request received", "entry_id", req.Msg.EntryID)

	entry, err := s.tracker.UpdateEntry(ctx, req.Msg.EntryID, models.EntryInput{
		StudentID:   req.Msg.StudentID,
		Date:        req.Msg.Date,
		Hours:       req.Msg.Hours,
		HourlyPrice: req.Msg.HourlyPrice,
	})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("UpdateEntry failed", "entry_id", req.Msg.EntryID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.UpdateEntryResponse{
		Entry:   toAPIEntry(entry),
		Warning: warning,
	}), nil
}

// DeleteEntry removes an entry.
func (s *TutorService) DeleteEntry(ctx context.Context, req *connect.Request[tutorapi.DeleteEntryRequest]) (*connect.Response[tutorapi.DeleteEntryResponse], error) {
	s.logger.Info("DeleteEntry request received", "entry_id", req.Msg.EntryID)

	warning, err := splitMutationError(s.tracker.DeleteEntry(ctx, req.Msg.EntryID))
	if err != nil {
		s.logger.Warn("DeleteEntry failed", "entry_id", req.Msg.EntryID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.DeleteEntryResponse{Warning: warning}), nil
}

// GetSchedule returns the weekly schedule grouped Monday to Sunday.
func (s *TutorService) GetSchedule(ctx context.Context, req *connect.Request[tutorapi.GetScheduleRequest]) (*connect.Response[tutorapi.GetScheduleResponse], error) {
	days := s.tracker.ScheduleByDay()

	out := make([]*tutorapi.DaySchedule, len(days))
	for i, d := range days {
		entries := make([]*tutorapi.ScheduleEntry, len(d.Entries))
		for j, e := range d.Entries {
			entries[j] = toAPIScheduleEntry(e)
		}
		out[i] = &tutorapi.DaySchedule{Day: d.Day, Entries: entries}
	}

	return connect.NewResponse(&tutorapi.GetScheduleResponse{Days: out}), nil
}

// UpsertScheduleEntry creates or edits a recurring class.
func (s *TutorService) UpsertScheduleEntry(ctx context.Context, req *connect.Request[tutorapi.UpsertScheduleEntryRequest]) (*connect.Response[tutorapi.UpsertScheduleEntryResponse], error) {
	s.logger.Info("UpsertScheduleEntry request received",
		"schedule_id", req.Msg.ID,
		"day", req.Msg.Day,
		"time", req.Msg.Time,
	)

	entry, err := s.tracker.UpsertScheduleEntry(ctx, req.Msg.ID, models.ScheduleInput{
		Name:    req.Msg.Name,
		Day:     req.Msg.Day,
		Time:    req.Msg.Time,
		EndTime: req.Msg.EndTime,
	})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("UpsertScheduleEntry failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.UpsertScheduleEntryResponse{
		Entry:   toAPIScheduleEntry(entry),
		Warning: warning,
	}), nil
}

// DeleteScheduleEntry removes a recurring class.
func (s *TutorService) DeleteScheduleEntry(ctx context.Context, req *connect.Request[tutorapi.DeleteScheduleEntryRequest]) (*connect.Response[tutorapi.DeleteScheduleEntryResponse], error) {
	s.logger.Info("DeleteScheduleEntry request received", "schedule_id", req.Msg.ID)

	warning, err := splitMutationError(s.tracker.DeleteScheduleEntry(ctx, req.Msg.ID))
	if err != nil {
		s.logger.Warn("DeleteScheduleEntry failed", "schedule_id", req.Msg.ID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.DeleteScheduleEntryResponse{Warning: warning}), nil
}

// ListNotes returns every note, newest first.
func (s *TutorService) ListNotes(ctx context.Context, req *connect.Request[tutorapi.ListNotesRequest]) (*connect.Response[tutorapi.ListNotesResponse], error) {
	notes := s.tracker.Notes()

	out := make([]*tutorapi.Note, len(notes))
	for i, n := range notes {
		out[i] = toAPINote(n)
	}

	return connect.NewResponse(&tutorapi.ListNotesResponse{Notes: out}), nil
}

// AddNote creates a note at the top of the list.
func (s *TutorService) AddNote(ctx context.Context, req *connect.Request[tutorapi.AddNoteRequest]) (*connect.Response[tutorapi.AddNoteResponse], error) {
	note, err := s.tracker.AddNote(ctx, models.NoteInput{Text: req.Msg.Text})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("AddNote failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.AddNoteResponse{Note: toAPINote(note), Warning: warning}), nil
}

// UpdateNote replaces a note's text.
func (s *TutorService) UpdateNote(ctx context.Context, req *connect.Request[tutorapi.UpdateNoteRequest]) (*connect.Response[tutorapi.UpdateNoteResponse], error) {
	note, err := s.tracker.UpdateNoteText(ctx, req.Msg.NoteID, models.NoteInput{Text: req.Msg.Text})
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("UpdateNote failed", "note_id", req.Msg.NoteID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.UpdateNoteResponse{Note: toAPINote(note), Warning: warning}), nil
}

// ToggleNote flips a note's done flag.
func (s *TutorService) ToggleNote(ctx context.Context, req *connect.Request[tutorapi.ToggleNoteRequest]) (*connect.Response[tutorapi.ToggleNoteResponse], error) {
	note, err := s.tracker.ToggleNoteDone(ctx, req.Msg.NoteID)
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Warn("ToggleNote failed", "note_id", req.Msg.NoteID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.ToggleNoteResponse{Note: toAPINote(note), Warning: warning}), nil
}

// DeleteNote removes a note.
func (s *TutorService) DeleteNote(ctx context.Context, req *connect.Request[tutorapi.DeleteNoteRequest]) (*connect.Response[tutorapi.DeleteNoteResponse], error) {
	warning, err := splitMutationError(s.tracker.DeleteNote(ctx, req.Msg.NoteID))
	if err != nil {
		s.logger.Warn("DeleteNote failed", "note_id", req.Msg.NoteID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.DeleteNoteResponse{Warning: warning}), nil
}

// GetToday returns every student with today's pending check-in.
func (s *TutorService) GetToday(ctx context.Context, req *connect.Request[tutorapi.GetTodayRequest]) (*connect.Response[tutorapi.GetTodayResponse], error) {
	cards := s.tracker.TodayView()

	out := make([]*tutorapi.TodayCard, len(cards))
	for i, c := range cards {
		out[i] = &tutorapi.TodayCard{
			Student:   toAPIStudent(c.Student),
			Selection: toAPISelection(c.Selection),
		}
	}

	return connect.NewResponse(&tutorapi.GetTodayResponse{
		Date:  models.DateKey(s.tracker.Now()),
		Cards: out,
	}), nil
}

// SetSelection opts a student in or out of today's sessions.
func (s *TutorService) SetSelection(ctx context.Context, req *connect.Request[tutorapi.SetSelectionRequest]) (*connect.Response[tutorapi.SetSelectionResponse], error) {
	sel, err := s.tracker.SetSelection(req.Msg.StudentID, req.Msg.OptedIn, req.Msg.Hours)
	if err != nil {
		s.logger.Warn("SetSelection failed", "student_id", req.Msg.StudentID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tutorapi.SetSelectionResponse{Selection: toAPISelection(sel)}), nil
}

// ConfirmToday logs today's opted-in students. Students who already have an
// entry today are reported as duplicates, not as an error.
func (s *TutorService) ConfirmToday(ctx context.Context, req *connect.Request[tutorapi.ConfirmTodayRequest]) (*connect.Response[tutorapi.ConfirmTodayResponse], error) {
	s.logger.Info("ConfirmToday request received")

	result, err := s.tracker.ConfirmToday(ctx)
	warning, err := splitMutationError(err)
	if err != nil {
		s.logger.Error("ConfirmToday failed", "error", err)
		return nil, err
	}

	return connect.NewResponse(&tutorapi.ConfirmTodayResponse{
		Date:       result.Date,
		Created:    toAPIEntries(result.Created),
		Duplicates: result.Duplicates,
		Warning:    warning,
	}), nil
}

// GetReport builds a monthly summary.
func (s *TutorService) GetReport(ctx context.Context, req *connect.Request[tutorapi.GetReportRequest]) (*connect.Response[tutorapi.GetReportResponse], error) {
	q, err := ParseReportQuery(req.Msg.Month, req.Msg.StudentID, req.Msg.Breakdown || s.breakdown)
	if err != nil {
		return nil, toConnectError(err)
	}

	report := s.tracker.Report(q)
	s.logger.Info("GetReport successful",
		"month", report.Month,
		"student_id", report.StudentID,
		"rows", len(report.Rows),
	)

	return connect.NewResponse(&tutorapi.GetReportResponse{Report: toAPIReport(report)}), nil
}

// ParseReportQuery turns request parameters into a ReportQuery. An empty
// month selects the current month.
func ParseReportQuery(month, studentID string, breakdown bool) (calculator.ReportQuery, error) {
	q := calculator.ReportQuery{StudentID: studentID, Breakdown: breakdown}
	if month == "" {
		return q, nil
	}

	m, ok := models.ParseMonth(month, time.Local)
	if !ok {
		return q, &tracker.ValidationError{Field: "month", Reason: "must be formatted as " + models.MonthLayout}
	}
	q.Month = m
	return q, nil
}
