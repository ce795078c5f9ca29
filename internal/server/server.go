// Package server assembles the HTTP handler: Connect RPC services, file
// exports, metrics, health and the static front end.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/auth"
	"github.com/mmynk/tutortrack/internal/export"
	"github.com/mmynk/tutortrack/internal/metrics"
	"github.com/mmynk/tutortrack/internal/middleware"
	"github.com/mmynk/tutortrack/internal/service"
	"github.com/mmynk/tutortrack/internal/tracker"
	"github.com/mmynk/tutortrack/pkg/tutorapi/tutorapiconnect"
)

// apiPrefix is the path prefix of every Connect procedure.
const apiPrefix = "/tutortrack.v1."

// Options configures the handler.
type Options struct {
	Tracker       *tracker.Tracker
	Metrics       *metrics.Metrics
	JWTManager    *auth.JWTManager
	Authenticator auth.Authenticator

	// Breakdown turns on day and week sub-totals for every report.
	Breakdown bool

	// StaticPath is the front end directory. Empty disables static files.
	StaticPath string

	Logger *slog.Logger
}

// New returns the root handler with request logging and CORS applied.
func New(opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	mux := http.NewServeMux()

	// Interceptors run in order: metrics sees every outcome, including
	// rejected requests, and logging sees the authenticated subject.
	tutorPath, tutorHandler := tutorapiconnect.NewTutorServiceHandler(
		service.NewTutorService(opts.Tracker, opts.Breakdown, opts.Logger),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(opts.Metrics),
			middleware.RequireAuth(opts.JWTManager, opts.Authenticator),
			middleware.LoggingInterceptor(opts.Logger),
		),
	)
	mux.Handle(tutorPath, tutorHandler)

	authPath, authHandler := tutorapiconnect.NewAuthServiceHandler(
		service.NewAuthService(opts.Authenticator, opts.JWTManager, opts.Logger),
		connect.WithInterceptors(
			middleware.MetricsInterceptor(opts.Metrics),
			middleware.LoggingInterceptor(opts.Logger),
		),
	)
	mux.Handle(authPath, authHandler)

	requireAuth := middleware.RequireAuthHTTP(opts.JWTManager, opts.Authenticator)
	exports := &exportHandler{tracker: opts.Tracker, breakdown: opts.Breakdown, logger: opts.Logger}
	mux.Handle("GET /export/report.xlsx", requireAuth(http.HandlerFunc(exports.report)))
	mux.Handle("GET /export/schedule.ics", requireAuth(http.HandlerFunc(exports.schedule)))

	mux.Handle("GET /metrics", opts.Metrics.Handler())
	mux.HandleFunc("GET /healthz", healthz(opts.Tracker))

	if opts.StaticPath != "" {
		staticDir, err := filepath.Abs(opts.StaticPath)
		if err != nil {
			return nil, err
		}
		opts.Logger.Info("Serving static files", "path", staticDir)
		mux.HandleFunc("/", staticFiles(staticDir))
	}

	return loggingMiddleware(corsMiddleware(mux)), nil
}

// healthz reports liveness and whether the last snapshot write failed.
func healthz(tr *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unsaved := tr.Unsaved()
		status := "ok"
		if unsaved {
			status = "degraded"
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": status, "unsaved": unsaved})
	}
}

// staticFiles serves the front end, falling back to index.html for unknown
// paths.
func staticFiles(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}

type exportHandler struct {
	tracker   *tracker.Tracker
	breakdown bool
	logger    *slog.Logger
}

// report serves the monthly report workbook.
// Query: month=YYYY-MM (default current), student=<id>, breakdown=true.
func (h *exportHandler) report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	breakdown := h.breakdown
	if v := query.Get("breakdown"); v != "" {
		breakdown, _ = strconv.ParseBool(v)
	}

	q, err := service.ParseReportQuery(query.Get("month"), query.Get("student"), breakdown)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, filename, err := export.ReportWorkbook(h.tracker.Report(q))
	if err != nil {
		h.logger.Error("Failed to export report", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.Info("Report exported", "filename", filename, "bytes", buf.Len())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	buf.WriteTo(w)
}

// schedule serves the weekly schedule as an iCalendar feed.
func (h *exportHandler) schedule(w http.ResponseWriter, r *http.Request) {
	cal, err := export.ScheduleCalendar(h.tracker.Schedule(), h.tracker.Now())
	if err != nil {
		h.logger.Error("Failed to export schedule", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.ScheduleFilename+`"`)
	w.Write([]byte(cal))
}
