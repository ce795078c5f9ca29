// Package tutorapiconnect wires the tutortrack services to Connect handlers
// and clients using the JSON codec from package tutorapi.
package tutorapiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/pkg/tutorapi"
)

const (
	// TutorServiceName is the fully-qualified name of the TutorService service.
	TutorServiceName = "tutortrack.v1.TutorService"
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "tutortrack.v1.AuthService"
)

// Procedure paths, suitable for req.Spec().Procedure and HTTP routing.
const (
	TutorServiceListStudentsProcedure        = "/tutortrack.v1.TutorService/ListStudents"
	TutorServiceAddStudentProcedure          = "/tutortrack.v1.TutorService/AddStudent"
	TutorServiceUpdateStudentProcedure       = "/tutortrack.v1.TutorService/UpdateStudent"
	TutorServiceDeleteStudentProcedure       = "/tutortrack.v1.TutorService/DeleteStudent"
	TutorServiceListRecordsProcedure         = "/tutortrack.v1.TutorService/ListRecords"
	TutorServiceAddEntryProcedure            = "/tutortrack.v1.TutorService/AddEntry"
	TutorServiceUpdateEntryProcedure         = "/tutortrack.v1.TutorService/UpdateEntry"
	TutorServiceDeleteEntryProcedure         = "/tutortrack.v1.TutorService/DeleteEntry"
	TutorServiceGetScheduleProcedure         = "/tutortrack.v1.TutorService/GetSchedule"
	TutorServiceUpsertScheduleEntryProcedure = "/tutortrack.v1.TutorService/UpsertScheduleEntry"
	TutorServiceDeleteScheduleEntryProcedure = "/tutortrack.v1.TutorService/DeleteScheduleEntry"
	TutorServiceListNotesProcedure           = "/tutortrack.v1.TutorService/ListNotes"
	TutorServiceAddNoteProcedure             = "/tutortrack.v1.TutorService/AddNote"
	TutorServiceUpdateNoteProcedure          = "/tutortrack.v1.TutorService/UpdateNote"
	TutorServiceToggleNoteProcedure          = "/tutortrack.v1.TutorService/ToggleNote"
	TutorServiceDeleteNoteProcedure          = "/tutortrack.v1.TutorService/DeleteNote"
	TutorServiceGetTodayProcedure            = "/tutortrack.v1.TutorService/GetToday"
	TutorServiceSetSelectionProcedure        = "/tutortrack.v1.TutorService/SetSelection"
	TutorServiceConfirmTodayProcedure        = "/tutortrack.v1.TutorService/ConfirmToday"
	TutorServiceGetReportProcedure           = "/tutortrack.v1.TutorService/GetReport"
	AuthServiceUnlockProcedure               = "/tutortrack.v1.AuthService/Unlock"
)

// TutorServiceHandler is implemented by the TutorService server.
type TutorServiceHandler interface {
	ListStudents(context.Context, *connect.Request[tutorapi.ListStudentsRequest]) (*connect.Response[tutorapi.ListStudentsResponse], error)
	AddStudent(context.Context, *connect.Request[tutorapi.AddStudentRequest]) (*connect.Response[tutorapi.AddStudentResponse], error)
	UpdateStudent(context.Context, *connect.Request[tutorapi.UpdateStudentRequest]) (*connect.Response[tutorapi.UpdateStudentResponse], error)
	DeleteStudent(context.Context, *connect.Request[tutorapi.DeleteStudentRequest]) (*connect.Response[tutorapi.DeleteStudentResponse], error)
	ListRecords(context.Context, *connect.Request[tutorapi.ListRecordsRequest]) (*connect.Response[tutorapi.ListRecordsResponse], error)
	AddEntry(context.Context, *connect.Request[tutorapi.AddEntryRequest]) (*connect.Response[tutorapi.AddEntryResponse], error)
	UpdateEntry(context.Context, *connect.Request[tutorapi.UpdateEntryRequest]) (*connect.Response[tutorapi.UpdateEntryResponse], error)
	DeleteEntry(context.Context, *connect.Request[tutorapi.DeleteEntryRequest]) (*connect.Response[tutorapi.DeleteEntryResponse], error)
	GetSchedule(context.Context, *connect.Request[tutorapi.GetScheduleRequest]) (*connect.Response[tutorapi.GetScheduleResponse], error)
	UpsertScheduleEntry(context.Context, *connect.Request[tutorapi.UpsertScheduleEntryRequest]) (*connect.Response[tutorapi.UpsertScheduleEntryResponse], error)
	DeleteScheduleEntry(context.Context, *connect.Request[tutorapi.DeleteScheduleEntryRequest]) (*connect.Response[tutorapi.DeleteScheduleEntryResponse], error)
	ListNotes(context.Context, *connect.Request[tutorapi.ListNotesRequest]) (*connect.Response[tutorapi.ListNotesResponse], error)
	AddNote(context.Context, *connect.Request[tutorapi.AddNoteRequest]) (*connect.Response[tutorapi.AddNoteResponse], error)
	UpdateNote(context.Context, *connect.Request[tutorapi.UpdateNoteRequest]) (*connect.Response[tutorapi.UpdateNoteResponse], error)
	ToggleNote(context.Context, *connect.Request[tutorapi.ToggleNoteRequest]) (*connect.Response[tutorapi.ToggleNoteResponse], error)
	DeleteNote(context.Context, *connect.Request[tutorapi.DeleteNoteRequest]) (*connect.Response[tutorapi.DeleteNoteResponse], error)
	GetToday(context.Context, *connect.Request[tutorapi.GetTodayRequest]) (*connect.Response[tutorapi.GetTodayResponse], error)
	SetSelection(context.Context, *connect.Request[tutorapi.SetSelectionRequest]) (*connect.Response[tutorapi.SetSelectionResponse], error)
	ConfirmToday(context.Context, *connect.Request[tutorapi.ConfirmTodayRequest]) (*connect.Response[tutorapi.ConfirmTodayResponse], error)
	GetReport(context.Context, *connect.Request[tutorapi.GetReportRequest]) (*connect.Response[tutorapi.GetReportResponse], error)
}

// NewTutorServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTutorServiceHandler(svc TutorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(tutorapi.JSONCodec{})}, opts...)

	listStudentsHandler := connect.NewUnaryHandler(
		TutorServiceListStudentsProcedure,
		svc.ListStudents,
		opts...,
	)
	addStudentHandler := connect.NewUnaryHandler(
		TutorServiceAddStudentProcedure,
		svc.AddStudent,
		opts...,
	)
	updateStudentHandler := connect.NewUnaryHandler(
		TutorServiceUpdateStudentProcedure,
		svc.UpdateStudent,
		opts...,
	)
	deleteStudentHandler := connect.NewUnaryHandler(
		TutorServiceDeleteStudentProcedure,
		svc.DeleteStudent,
		opts...,
	)
	listRecordsHandler := connect.NewUnaryHandler(
		TutorServiceListRecordsProcedure,
		svc.ListRecords,
		opts...,
	)
	addEntryHandler := connect.NewUnaryHandler(
		TutorServiceAddEntryProcedure,
		svc.AddEntry,
		opts...,
	)
	updateEntryHandler := connect.NewUnaryHandler(
		TutorServiceUpdateEntryProcedure,
		svc.UpdateEntry,
		opts...,
	)
	deleteEntryHandler := connect.NewUnaryHandler(
		TutorServiceDeleteEntryProcedure,
		svc.DeleteEntry,
		opts...,
	)
	getScheduleHandler := connect.NewUnaryHandler(
		TutorServiceGetScheduleProcedure,
		svc.GetSchedule,
		opts...,
	)
	upsertScheduleEntryHandler := connect.NewUnaryHandler(
		TutorServiceUpsertScheduleEntryProcedure,
		svc.UpsertScheduleEntry,
		opts...,
	)
	deleteScheduleEntryHandler := connect.NewUnaryHandler(
		TutorServiceDeleteScheduleEntryProcedure,
		svc.DeleteScheduleEntry,
		opts...,
	)
	listNotesHandler := connect.NewUnaryHandler(
		TutorServiceListNotesProcedure,
		svc.ListNotes,
		opts...,
	)
	addNoteHandler := connect.NewUnaryHandler(
		TutorServiceAddNoteProcedure,
		svc.AddNote,
		opts...,
	)
	updateNoteHandler := connect.NewUnaryHandler(
		TutorServiceUpdateNoteProcedure,
		svc.UpdateNote,
		opts...,
	)
	toggleNoteHandler := connect.NewUnaryHandler(
		TutorServiceToggleNoteProcedure,
		svc.ToggleNote,
		opts...,
	)
	deleteNoteHandler := connect.NewUnaryHandler(
		TutorServiceDeleteNoteProcedure,
		svc.DeleteNote,
		opts...,
	)
	getTodayHandler := connect.NewUnaryHandler(
		TutorServiceGetTodayProcedure,
		svc.GetToday,
		opts...,
	)
	setSelectionHandler := connect.NewUnaryHandler(
		TutorServiceSetSelectionProcedure,
		svc.SetSelection,
		opts...,
	)
	confirmTodayHandler := connect.NewUnaryHandler(
		TutorServiceConfirmTodayProcedure,
		svc.ConfirmToday,
		opts...,
	)
	getReportHandler := connect.NewUnaryHandler(
		TutorServiceGetReportProcedure,
		svc.GetReport,
		opts...,
	)

	return "/tutortrack.v1.TutorService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TutorServiceListStudentsProcedure:
			listStudentsHandler.ServeHTTP(w, r)
		case TutorServiceAddStudentProcedure:
			addStudentHandler.ServeHTTP(w, r)
		case TutorServiceUpdateStudentProcedure:
			updateStudentHandler.ServeHTTP(w, r)
		case TutorServiceDeleteStudentProcedure:
			deleteStudentHandler.ServeHTTP(w, r)
		case TutorServiceListRecordsProcedure:
			listRecordsHandler.ServeHTTP(w, r)
		case TutorServiceAddEntryProcedure:
			addEntryHandler.ServeHTTP(w, r)
		case TutorServiceUpdateEntryProcedure:
			updateEntryHandler.ServeHTTP(w, r)
		case TutorServiceDeleteEntryProcedure:
			deleteEntryHandler.ServeHTTP(w, r)
		case TutorServiceGetScheduleProcedure:
			getScheduleHandler.ServeHTTP(w, r)
		case TutorServiceUpsertScheduleEntryProcedure:
			upsertScheduleEntryHandler.ServeHTTP(w, r)
		case TutorServiceDeleteScheduleEntryProcedure:
			deleteScheduleEntryHandler.ServeHTTP(w, r)
		case TutorServiceListNotesProcedure:
			listNotesHandler.ServeHTTP(w, r)
		case TutorServiceAddNoteProcedure:
			addNoteHandler.ServeHTTP(w, r)
		case TutorServiceUpdateNoteProcedure:
			updateNoteHandler.ServeHTTP(w, r)
		case TutorServiceToggleNoteProcedure:
			toggleNoteHandler.ServeHTTP(w, r)
		case TutorServiceDeleteNoteProcedure:
			deleteNoteHandler.ServeHTTP(w, r)
		case TutorServiceGetTodayProcedure:
			getTodayHandler.ServeHTTP(w, r)
		case TutorServiceSetSelectionProcedure:
			setSelectionHandler.ServeHTTP(w, r)
		case TutorServiceConfirmTodayProcedure:
			confirmTodayHandler.ServeHTTP(w, r)
		case TutorServiceGetReportProcedure:
			getReportHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTutorServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTutorServiceHandler struct{}

func (UnimplementedTutorServiceHandler) ListStudents(context.Context, *connect.Request[tutorapi.ListStudentsRequest]) (*connect.Response[tutorapi.ListStudentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.ListStudents is not implemented"))
}

func (UnimplementedTutorServiceHandler) AddStudent(context.Context, *connect.Request[tutorapi.AddStudentRequest]) (*connect.Response[tutorapi.AddStudentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.AddStudent is not implemented"))
}

func (UnimplementedTutorServiceHandler) UpdateStudent(context.Context, *connect.Request[tutorapi.UpdateStudentRequest]) (*connect.Response[tutorapi.UpdateStudentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.UpdateStudent is not implemented"))
}

func (UnimplementedTutorServiceHandler) DeleteStudent(context.Context, *connect.Request[tutorapi.DeleteStudentRequest]) (*connect.Response[tutorapi.DeleteStudentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.DeleteStudent is not implemented"))
}

func (UnimplementedTutorServiceHandler) ListRecords(context.Context, *connect.Request[tutorapi.ListRecordsRequest]) (*connect.Response[tutorapi.ListRecordsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.ListRecords is not implemented"))
}

func (UnimplementedTutorServiceHandler) AddEntry(context.Context, *connect.Request[tutorapi.AddEntryRequest]) (*connect.Response[tutorapi.AddEntryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.AddEntry is not implemented"))
}

func (UnimplementedTutorServiceHandler) UpdateEntry(context.Context, *connect.Request[tutorapi.UpdateEntryRequest]) (*connect.Response[tutorapi.UpdateEntryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.UpdateEntry is not implemented"))
}

func (UnimplementedTutorServiceHandler) DeleteEntry(context.Context, *connect.Request[tutorapi.DeleteEntryRequest]) (*connect.Response[tutorapi.DeleteEntryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.DeleteEntry is not implemented"))
}

func (UnimplementedTutorServiceHandler) GetSchedule(context.Context, *connect.Request[tutorapi.GetScheduleRequest]) (*connect.Response[tutorapi.GetScheduleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.GetSchedule is not implemented"))
}

func (UnimplementedTutorServiceHandler) UpsertScheduleEntry(context.Context, *connect.Request[tutorapi.UpsertScheduleEntryRequest]) (*connect.Response[tutorapi.UpsertScheduleEntryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.UpsertScheduleEntry is not implemented"))
}

func (UnimplementedTutorServiceHandler) DeleteScheduleEntry(context.Context, *connect.Request[tutorapi.DeleteScheduleEntryRequest]) (*connect.Response[tutorapi.DeleteScheduleEntryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.DeleteScheduleEntry is not implemented"))
}

func (UnimplementedTutorServiceHandler) ListNotes(context.Context, *connect.Request[tutorapi.ListNotesRequest]) (*connect.Response[tutorapi.ListNotesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.ListNotes is not implemented"))
}

func (UnimplementedTutorServiceHandler) AddNote(context.Context, *connect.Request[tutorapi.AddNoteRequest]) (*connect.Response[tutorapi.AddNoteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.AddNote is not implemented"))
}

func (UnimplementedTutorServiceHandler) UpdateNote(context.Context, *connect.Request[tutorapi.UpdateNoteRequest]) (*connect.Response[tutorapi.UpdateNoteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.UpdateNote is not implemented"))
}

func (UnimplementedTutorServiceHandler) ToggleNote(context.Context, *connect.Request[tutorapi.ToggleNoteRequest]) (*connect.Response[tutorapi.ToggleNoteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.ToggleNote is not implemented"))
}

func (UnimplementedTutorServiceHandler) DeleteNote(context.Context, *connect.Request[tutorapi.DeleteNoteRequest]) (*connect.Response[tutorapi.DeleteNoteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.DeleteNote is not implemented"))
}

func (UnimplementedTutorServiceHandler) GetToday(context.Context, *connect.Request[tutorapi.GetTodayRequest]) (*connect.Response[tutorapi.GetTodayResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.GetToday is not implemented"))
}

func (UnimplementedTutorServiceHandler) SetSelection(context.Context, *connect.Request[tutorapi.SetSelectionRequest]) (*connect.Response[tutorapi.SetSelectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.SetSelection is not implemented"))
}

func (UnimplementedTutorServiceHandler) ConfirmToday(context.Context, *connect.Request[tutorapi.ConfirmTodayRequest]) (*connect.Response[tutorapi.ConfirmTodayResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.ConfirmToday is not implemented"))
}

func (UnimplementedTutorServiceHandler) GetReport(context.Context, *connect.Request[tutorapi.GetReportRequest]) (*connect.Response[tutorapi.GetReportResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.TutorService.GetReport is not implemented"))
}

// TutorServiceClient is a client for the TutorService service.
type TutorServiceClient interface {
	ListStudents(context.Context, *connect.Request[tutorapi.ListStudentsRequest]) (*connect.Response[tutorapi.ListStudentsResponse], error)
	AddStudent(context.Context, *connect.Request[tutorapi.AddStudentRequest]) (*connect.Response[tutorapi.AddStudentResponse], error)
	UpdateStudent(context.Context, *connect.Request[tutorapi.UpdateStudentRequest]) (*connect.Response[tutorapi.UpdateStudentResponse], error)
	DeleteStudent(context.Context, *connect.Request[tutorapi.DeleteStudentRequest]) (*connect.Response[tutorapi.DeleteStudentResponse], error)
	ListRecords(context.Context, *connect.Request[tutorapi.ListRecordsRequest]) (*connect.Response[tutorapi.ListRecordsResponse], error)
	AddEntry(context.Context, *connect.Request[tutorapi.AddEntryRequest]) (*connect.Response[tutorapi.AddEntryResponse], error)
	UpdateEntry(context.Context, *connect.Request[tutorapi.UpdateEntryRequest]) (*connect.Response[tutorapi.UpdateEntryResponse], error)
	DeleteEntry(context.Context, *connect.Request[tutorapi.DeleteEntryRequest]) (*connect.Response[tutorapi.DeleteEntryResponse], error)
	GetSchedule(context.Context, *connect.Request[tutorapi.GetScheduleRequest]) (*connect.Response[tutorapi.GetScheduleResponse], error)
	UpsertScheduleEntry(context.Context, *connect.Request[tutorapi.UpsertScheduleEntryRequest]) (*connect.Response[tutorapi.UpsertScheduleEntryResponse], error)
	DeleteScheduleEntry(context.Context, *connect.Request[tutorapi.DeleteScheduleEntryRequest]) (*connect.Response[tutorapi.DeleteScheduleEntryResponse], error)
	ListNotes(context.Context, *connect.Request[tutorapi.ListNotesRequest]) (*connect.Response[tutorapi.ListNotesResponse], error)
	AddNote(context.Context, *connect.Request[tutorapi.AddNoteRequest]) (*connect.Response[tutorapi.AddNoteResponse], error)
	UpdateNote(context.Context, *connect.Request[tutorapi.UpdateNoteRequest]) (*connect.Response[tutorapi.UpdateNoteResponse], error)
	ToggleNote(context.Context, *connect.Request[tutorapi.ToggleNoteRequest]) (*connect.Response[tutorapi.ToggleNoteResponse], error)
	DeleteNote(context.Context, *connect.Request[tutorapi.DeleteNoteRequest]) (*connect.Response[tutorapi.DeleteNoteResponse], error)
	GetToday(context.Context, *connect.Request[tutorapi.GetTodayRequest]) (*connect.Response[tutorapi.GetTodayResponse], error)
	SetSelection(context.Context, *connect.Request[tutorapi.SetSelectionRequest]) (*connect.Response[tutorapi.SetSelectionResponse], error)
	ConfirmToday(context.Context, *connect.Request[tutorapi.ConfirmTodayRequest]) (*connect.Response[tutorapi.ConfirmTodayResponse], error)
	GetReport(context.Context, *connect.Request[tutorapi.GetReportRequest]) (*connect.Response[tutorapi.GetReportResponse], error)
}

// NewTutorServiceClient constructs a client for the TutorService service. baseURL is the
// server root, e.g. http://localhost:8080.
func NewTutorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TutorServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(tutorapi.JSONCodec{})}, opts...)

	return &tutorServiceClient{
		listStudents: connect.NewClient[tutorapi.ListStudentsRequest, tutorapi.ListStudentsResponse](
			httpClient,
			baseURL+TutorServiceListStudentsProcedure,
			opts...,
		),
		addStudent: connect.NewClient[tutorapi.AddStudentRequest, tutorapi.AddStudentResponse](
			httpClient,
			baseURL+TutorServiceAddStudentProcedure,
			opts...,
		),
		updateStudent: connect.NewClient[tutorapi.UpdateStudentRequest, tutorapi.UpdateStudentResponse](
			httpClient,
			baseURL+TutorServiceUpdateStudentProcedure,
			opts...,
		),
		deleteStudent: connect.NewClient[tutorapi.DeleteStudentRequest, tutorapi.DeleteStudentResponse](
			httpClient,
			baseURL+TutorServiceDeleteStudentProcedure,
			opts...,
		),
		listRecords: connect.NewClient[tutorapi.ListRecordsRequest, tutorapi.ListRecordsResponse](
			httpClient,
			baseURL+TutorServiceListRecordsProcedure,
			opts...,
		),
		addEntry: connect.NewClient[tutorapi.AddEntryRequest, tutorapi.AddEntryResponse](
			httpClient,
			baseURL+TutorServiceAddEntryProcedure,
			opts...,
		),
		updateEntry: connect.NewClient[tutorapi.UpdateEntryRequest, tutorapi.UpdateEntryResponse](
			httpClient,
			baseURL+TutorServiceUpdateEntryProcedure,
			opts...,
		),
		deleteEntry: connect.NewClient[tutorapi.DeleteEntryRequest, tutorapi.DeleteEntryResponse](
			httpClient,
			baseURL+TutorServiceDeleteEntryProcedure,
			opts...,
		),
		getSchedule: connect.NewClient[tutorapi.GetScheduleRequest, tutorapi.GetScheduleResponse](
			httpClient,
			baseURL+TutorServiceGetScheduleProcedure,
			opts...,
		),
		upsertScheduleEntry: connect.NewClient[tutorapi.UpsertScheduleEntryRequest, tutorapi.UpsertScheduleEntryResponse](
			httpClient,
			baseURL+TutorServiceUpsertScheduleEntryProcedure,
			opts...,
		),
		deleteScheduleEntry: connect.NewClient[tutorapi.DeleteScheduleEntryRequest, tutorapi.DeleteScheduleEntryResponse](
			httpClient,
			baseURL+TutorServiceDeleteScheduleEntryProcedure,
			opts...,
		),
		listNotes: connect.NewClient[tutorapi.ListNotesRequest, tutorapi.ListNotesResponse](
			httpClient,
			baseURL+TutorServiceListNotesProcedure,
			opts...,
		),
		addNote: connect.NewClient[tutorapi.AddNoteRequest, tutorapi.AddNoteResponse](
			httpClient,
			baseURL+TutorServiceAddNoteProcedure,
			opts...,
		),
		updateNote: connect.NewClient[tutorapi.UpdateNoteRequest, tutorapi.UpdateNoteResponse](
			httpClient,
			baseURL+TutorServiceUpdateNoteProcedure,
			opts...,
		),
		toggleNote: connect.NewClient[tutorapi.ToggleNoteRequest, tutorapi.ToggleNoteResponse](
			httpClient,
			baseURL+TutorServiceToggleNoteProcedure,
			opts...,
		),
		deleteNote: connect.NewClient[tutorapi.DeleteNoteRequest, tutorapi.DeleteNoteResponse](
			httpClient,
			baseURL+TutorServiceDeleteNoteProcedure,
			opts...,
		),
		getToday: connect.NewClient[tutorapi.GetTodayRequest, tutorapi.GetTodayResponse](
			httpClient,
			baseURL+TutorServiceGetTodayProcedure,
			opts...,
		),
		setSelection: connect.NewClient[tutorapi.SetSelectionRequest, tutorapi.SetSelectionResponse](
			httpClient,
			baseURL+TutorServiceSetSelectionProcedure,
			opts...,
		),
		confirmToday: connect.NewClient[tutorapi.ConfirmTodayRequest, tutorapi.ConfirmTodayResponse](
			httpClient,
			baseURL+TutorServiceConfirmTodayProcedure,
			opts...,
		),
		getReport: connect.NewClient[tutorapi.GetReportRequest, tutorapi.GetReportResponse](
			httpClient,
			baseURL+TutorServiceGetReportProcedure,
			opts...,
		),
	}
}

type tutorServiceClient struct {
	listStudents        *connect.Client[tutorapi.ListStudentsRequest, tutorapi.ListStudentsResponse]
	addStudent          *connect.Client[tutorapi.AddStudentRequest, tutorapi.AddStudentResponse]
	updateStudent       *connect.Client[tutorapi.UpdateStudentRequest, tutorapi.UpdateStudentResponse]
	deleteStudent       *connect.Client[tutorapi.DeleteStudentRequest, tutorapi.DeleteStudentResponse]
	listRecords         *connect.Client[tutorapi.ListRecordsRequest, tutorapi.ListRecordsResponse]
	addEntry            *connect.Client[tutorapi.AddEntryRequest, tutorapi.AddEntryResponse]
	updateEntry         *connect.Client[tutorapi.UpdateEntryRequest, tutorapi.UpdateEntryResponse]
	deleteEntry         *connect.Client[tutorapi.DeleteEntryRequest, tutorapi.DeleteEntryResponse]
	getSchedule         *connect.Client[tutorapi.GetScheduleRequest, tutorapi.GetScheduleResponse]
	upsertScheduleEntry *connect.Client[tutorapi.UpsertScheduleEntryRequest, tutorapi.UpsertScheduleEntryResponse]
	deleteScheduleEntry *connect.Client[tutorapi.DeleteScheduleEntryRequest, tutorapi.DeleteScheduleEntryResponse]
	listNotes           *connect.Client[tutorapi.ListNotesRequest, tutorapi.ListNotesResponse]
	addNote             *connect.Client[tutorapi.AddNoteRequest, tutorapi.AddNoteResponse]
	updateNote          *connect.Client[tutorapi.UpdateNoteRequest, tutorapi.UpdateNoteResponse]
	toggleNote          *connect.Client[tutorapi.ToggleNoteRequest, tutorapi.ToggleNoteResponse]
	deleteNote          *connect.Client[tutorapi.DeleteNoteRequest, tutorapi.DeleteNoteResponse]
	getToday            *connect.Client[tutorapi.GetTodayRequest, tutorapi.GetTodayResponse]
	setSelection        *connect.Client[tutorapi.SetSelectionRequest, tutorapi.SetSelectionResponse]
	confirmToday        *connect.Client[tutorapi.ConfirmTodayRequest, tutorapi.ConfirmTodayResponse]
	getReport           *connect.Client[tutorapi.GetReportRequest, tutorapi.GetReportResponse]
}

func (c *tutorServiceClient) ListStudents(ctx context.Context, req *connect.Request[tutorapi.ListStudentsRequest]) (*connect.Response[tutorapi.ListStudentsResponse], error) {
	return c.listStudents.CallUnary(ctx, req)
}

func (c *tutorServiceClient) AddStudent(ctx context.Context, req *connect.Request[tutorapi.AddStudentRequest]) (*connect.Response[tutorapi.AddStudentResponse], error) {
	return c.addStudent.CallUnary(ctx, req)
}

func (c *tutorServiceClient) UpdateStudent(ctx context.Context, req *connect.Request[tutorapi.UpdateStudentRequest]) (*connect.Response[tutorapi.UpdateStudentResponse], error) {
	return c.updateStudent.CallUnary(ctx, req)
}

func (c *tutorServiceClient) DeleteStudent(ctx context.Context, req *connect.Request[tutorapi.DeleteStudentRequest]) (*connect.Response[tutorapi.DeleteStudentResponse], error) {
	return c.deleteStudent.CallUnary(ctx, req)
}

func (c *tutorServiceClient) ListRecords(ctx context.Context, req *connect.Request[tutorapi.ListRecordsRequest]) (*connect.Response[tutorapi.ListRecordsResponse], error) {
	return c.listRecords.CallUnary(ctx, req)
}

func (c *tutorServiceClient) AddEntry(ctx context.Context, req *connect.Request[tutorapi.AddEntryRequest]) (*connect.Response[tutorapi.AddEntryResponse], error) {
	return c.addEntry.CallUnary(ctx, req)
}

func (c *tutorServiceClient) UpdateEntry(ctx context.Context, req *connect.Request[tutorapi.UpdateEntryRequest]) (*connect.Response[tutorapi.UpdateEntryResponse], error) {
	return c.updateEntry.CallUnary(ctx, req)
}

func (c *tutorServiceClient) DeleteEntry(ctx context.Context, req *connect.Request[tutorapi.DeleteEntryRequest]) (*connect.Response[tutorapi.DeleteEntryResponse], error) {
	return c.deleteEntry.CallUnary(ctx, req)
}

func (c *tutorServiceClient) GetSchedule(ctx context.Context, req *connect.Request[tutorapi.GetScheduleRequest]) (*connect.Response[tutorapi.GetScheduleResponse], error) {
	return c.getSchedule.CallUnary(ctx, req)
}

func (c *tutorServiceClient) UpsertScheduleEntry(ctx context.Context, req *connect.Request[tutorapi.UpsertScheduleEntryRequest]) (*connect.Response[tutorapi.UpsertScheduleEntryResponse], error) {
	return c.upsertScheduleEntry.CallUnary(ctx, req)
}

func (c *tutorServiceClient) DeleteScheduleEntry(ctx context.Context, req *connect.Request[tutorapi.DeleteScheduleEntryRequest]) (*connect.Response[tutorapi.DeleteScheduleEntryResponse], error) {
	return c.deleteScheduleEntry.CallUnary(ctx, req)
}

func (c *tutorServiceClient) ListNotes(ctx context.Context, req *connect.Request[tutorapi.ListNotesRequest]) (*connect.Response[tutorapi.ListNotesResponse], error) {
	return c.listNotes.CallUnary(ctx, req)
}

func (c *tutorServiceClient) AddNote(ctx context.Context, req *connect.Request[tutorapi.AddNoteRequest]) (*connect.Response[tutorapi.AddNoteResponse], error) {
	return c.addNote.CallUnary(ctx, req)
}

func (c *tutorServiceClient) UpdateNote(ctx context.Context, req *connect.Request[tutorapi.UpdateNoteRequest]) (*connect.Response[tutorapi.UpdateNoteResponse], error) {
	return c.updateNote.CallUnary(ctx, req)
}

func (c *tutorServiceClient) ToggleNote(ctx context.Context, req *connect.Request[tutorapi.ToggleNoteRequest]) (*connect.Response[tutorapi.ToggleNoteResponse], error) {
	return c.toggleNote.CallUnary(ctx, req)
}

func (c *tutorServiceClient) DeleteNote(ctx context.Context, req *connect.Request[tutorapi.DeleteNoteRequest]) (*connect.Response[tutorapi.DeleteNoteResponse], error) {
	return c.deleteNote.CallUnary(ctx, req)
}

func (c *tutorServiceClient) GetToday(ctx context.Context, req *connect.Request[tutorapi.GetTodayRequest]) (*connect.Response[tutorapi.GetTodayResponse], error) {
	return c.getToday.CallUnary(ctx, req)
}

func (c *tutorServiceClient) SetSelection(ctx context.Context, req *connect.Request[tutorapi.SetSelectionRequest]) (*connect.Response[tutorapi.SetSelectionResponse], error) {
	return c.setSelection.CallUnary(ctx, req)
}

func (c *tutorServiceClient) ConfirmToday(ctx context.Context, req *connect.Request[tutorapi.ConfirmTodayRequest]) (*connect.Response[tutorapi.ConfirmTodayResponse], error) {
	return c.confirmToday.CallUnary(ctx, req)
}

func (c *tutorServiceClient) GetReport(ctx context.Context, req *connect.Request[tutorapi.GetReportRequest]) (*connect.Response[tutorapi.GetReportResponse], error) {
	return c.getReport.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the AuthService server.
type AuthServiceHandler interface {
	Unlock(context.Context, *connect.Request[tutorapi.UnlockRequest]) (*connect.Response[tutorapi.UnlockResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(tutorapi.JSONCodec{})}, opts...)

	unlockHandler := connect.NewUnaryHandler(
		AuthServiceUnlockProcedure,
		svc.Unlock,
		opts...,
	)

	return "/tutortrack.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceUnlockProcedure:
			unlockHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Unlock(context.Context, *connect.Request[tutorapi.UnlockRequest]) (*connect.Response[tutorapi.UnlockResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tutortrack.v1.AuthService.Unlock is not implemented"))
}

// AuthServiceClient is a client for the AuthService service.
type AuthServiceClient interface {
	Unlock(context.Context, *connect.Request[tutorapi.UnlockRequest]) (*connect.Response[tutorapi.UnlockResponse], error)
}

// NewAuthServiceClient constructs a client for the AuthService service. baseURL is the
// server root, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(tutorapi.JSONCodec{})}, opts...)

	return &authServiceClient{
		unlock: connect.NewClient[tutorapi.UnlockRequest, tutorapi.UnlockResponse](
			httpClient,
			baseURL+AuthServiceUnlockProcedure,
			opts...,
		),
	}
}

type authServiceClient struct {
	unlock *connect.Client[tutorapi.UnlockRequest, tutorapi.UnlockResponse]
}

func (c *authServiceClient) Unlock(ctx context.Context, req *connect.Request[tutorapi.UnlockRequest]) (*connect.Response[tutorapi.UnlockResponse], error) {
	return c.unlock.CallUnary(ctx, req)
}
