package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tutortrack/internal/auth"
	"github.com/mmynk/tutortrack/internal/metrics"
	"github.com/mmynk/tutortrack/internal/models"
	"github.com/mmynk/tutortrack/internal/storage"
	"github.com/mmynk/tutortrack/internal/storage/memory"
	"github.com/mmynk/tutortrack/internal/tracker"
	"github.com/mmynk/tutortrack/pkg/tutorapi"
	"github.com/mmynk/tutortrack/pkg/tutorapi/tutorapiconnect"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type testEnv struct {
	server  *httptest.Server
	tracker *tracker.Tracker
	store   *memory.Store
	jwt     *auth.JWTManager
}

// setupTestServer starts the full handler over an in-memory store. A
// non-empty passcode enables the lock.
func setupTestServer(t *testing.T, passcode, staticPath string) *testEnv {
	t.Helper()

	hash := ""
	if passcode != "" {
		var err error
		if hash, err = auth.HashPasscode(passcode); err != nil {
			t.Fatalf("HashPasscode failed: %v", err)
		}
	}

	store := memory.New()
	m := metrics.New()
	clock := func() time.Time { return time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local) }
	tr := tracker.New(context.Background(), storage.NewGateway(store, ""),
		tracker.WithClock(clock), tracker.WithLogger(quiet), tracker.WithMetrics(m))
	jwtManager := auth.NewJWTManager("server-test-secret", time.Hour)

	handler, err := New(Options{
		Tracker:       tr,
		Metrics:       m,
		JWTManager:    jwtManager,
		Authenticator: auth.NewPasscodeAuthenticator(hash),
		StaticPath:    staticPath,
		Logger:        quiet,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testEnv{server: server, tracker: tr, store: store, jwt: jwtManager}
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	env := setupTestServer(t, "", "")

	resp := get(t, env.server.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		Status  string `json:"status"`
		Unsaved bool   `json:"unsaved"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Status != "ok" || body.Unsaved {
		t.Errorf("body = %+v", body)
	}
}

func TestHealthz_Degraded(t *testing.T) {
	env := setupTestServer(t, "", "")
	env.store.FailWrites(io.ErrUnexpectedEOF)
	env.tracker.AddNote(context.Background(), models.NoteInput{Text: "unsaved"})

	resp := get(t, env.server.URL+"/healthz")
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), `"degraded"`) {
		t.Errorf("body = %s, want degraded", data)
	}
}

func TestRPCAndMetrics(t *testing.T) {
	env := setupTestServer(t, "", "")
	client := tutorapiconnect.NewTutorServiceClient(http.DefaultClient, env.server.URL)

	if _, err := client.AddStudent(context.Background(), connect.NewRequest(&tutorapi.AddStudentRequest{
		Name: "Alice", ClassesBought: 4, HourlyPrice: 50,
	})); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}

	resp := get(t, env.server.URL+"/metrics")
	data, _ := io.ReadAll(resp.Body)
	out := string(data)
	for _, want := range []string{
		`tutortrack_rpc_duration_seconds_count{code="ok",procedure="/tutortrack.v1.TutorService/AddStudent"} 1`,
		`tutortrack_mutations_total{op="add_student",outcome="ok"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestExportReport(t *testing.T) {
	env := setupTestServer(t, "", "")
	ctx := context.Background()

	alice, _ := env.tracker.AddStudent(ctx, models.StudentInput{Name: "Alice", HourlyPrice: 20})
	env.tracker.AddEntry(ctx, models.EntryInput{StudentID: alice.ID, Date: "2026-03-02", Hours: 2, HourlyPrice: 20})

	resp := get(t, env.server.URL+"/export/report.xlsx?month=2026-03")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "tutortrack-report-2026-03.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	data, _ := io.ReadAll(resp.Body)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Report", "A3"); v != "Alice" {
		t.Errorf("A3 = %q, want Alice", v)
	}
	if v, _ := f.GetCellValue("Report", "C4"); v != "¥40.00" {
		t.Errorf("C4 = %q, want ¥40.00", v)
	}
}

func TestExportReport_BadMonth(t *testing.T) {
	env := setupTestServer(t, "", "")

	resp := get(t, env.server.URL+"/export/report.xlsx?month=soon")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestExportSchedule(t *testing.T) {
	env := setupTestServer(t, "", "")
	env.tracker.AddScheduleEntry(context.Background(), models.ScheduleInput{Name: "Alice", Day: "Friday", Time: "16:00"})

	resp := get(t, env.server.URL+"/export/schedule.ics")
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	out := string(data)
	if !strings.Contains(out, "SUMMARY:Alice") || !strings.Contains(out, "FREQ=WEEKLY;BYDAY=FR") {
		t.Errorf("unexpected calendar:\n%s", out)
	}
}

func TestExport_RequiresToken(t *testing.T) {
	env := setupTestServer(t, "1357", "")

	resp := get(t, env.server.URL+"/export/schedule.ics")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	token, _, err := env.jwt.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	resp = get(t, env.server.URL+"/export/schedule.ics?token="+token)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status with token = %d, want 200", resp.StatusCode)
	}
}

func TestUnlockThroughServer(t *testing.T) {
	env := setupTestServer(t, "1357", "")
	ctx := context.Background()
	authClient := tutorapiconnect.NewAuthServiceClient(http.DefaultClient, env.server.URL)
	tutorClient := tutorapiconnect.NewTutorServiceClient(http.DefaultClient, env.server.URL)

	_, err := tutorClient.ListNotes(ctx, connect.NewRequest(&tutorapi.ListNotesRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	unlocked, err := authClient.Unlock(ctx, connect.NewRequest(&tutorapi.UnlockRequest{Passcode: "1357"}))
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	req := connect.NewRequest(&tutorapi.ListNotesRequest{})
	req.Header().Set("Authorization", "Bearer "+unlocked.Msg.Token)
	if _, err := tutorClient.ListNotes(ctx, req); err != nil {
		t.Errorf("ListNotes with token failed: %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTestServer(t, "", "")

	req, _ := http.NewRequest(http.MethodOptions, env.server.URL+"/tutortrack.v1.TutorService/ListStudents", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Errorf("Allow-Headers = %q", got)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>tutortrack</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	env := setupTestServer(t, "", dir)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "<h1>tutortrack</h1>"},
		{"/app.js", http.StatusOK, "console.log(1)"},
		{"/records", http.StatusOK, "<h1>tutortrack</h1>"},
		{"/tutortrack.v1.Unknown/Call", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, env.server.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.body != "" {
				data, _ := io.ReadAll(resp.Body)
				if string(data) != tt.body {
					t.Errorf("body = %q, want %q", data, tt.body)
				}
			}
		})
	}
}
