// Package tracker owns the in-memory domain state of the tutoring tracker.
//
// A Tracker holds the four persisted collections (students, entries, schedule,
// notes) plus the unpersisted check-in selections for today. Every mutator
// validates its input, applies the change under a lock, and writes the new
// snapshot through the Gateway before returning. Reads never wait on storage.
//
// When a write fails the change stays applied in memory and the mutator
// returns its result together with a *PersistenceError; see IsSaveWarning.
package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/mmynk/tutortrack/internal/metrics"
	"github.com/mmynk/tutortrack/internal/models"
)

// Gateway loads and saves the whole snapshot. storage.Gateway implements it.
type Gateway interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}

// Tracker is the single owner of the domain state.
type Tracker struct {
	mu         sync.RWMutex
	snap       *models.Snapshot
	selections map[string]models.Selection
	version    uint64

	persister *persister
	now       func() time.Time
	newID     func() string
	lang      language.Tag
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the clock used for today's date and the default report month.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithMetrics enables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// WithLanguage sets the collation language for report row ordering.
func WithLanguage(tag language.Tag) Option {
	return func(t *Tracker) {
		t.lang = tag
	}
}

// New loads the snapshot through gw and returns a ready Tracker. A failed
// load is logged and the tracker starts from an empty snapshot.
func New(ctx context.Context, gw Gateway, opts ...Option) *Tracker {
	t := &Tracker{
		selections: make(map[string]models.Selection),
		persister:  &persister{gw: gw},
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		lang:       language.Und,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	snap, err := gw.Load(ctx)
	if err != nil {
		t.logger.Warn("Failed to load snapshot, starting empty", "error", err)
		snap = models.EmptySnapshot()
	}
	t.snap = snap

	t.logger.Info("Tracker loaded",
		"students", len(snap.Students),
		"entries", len(snap.Entries),
		"schedule", len(snap.Schedule),
		"notes", len(snap.Notes),
	)

	return t
}

// commitLocked bumps the version and returns a copy of the state to persist.
// Caller must hold t.mu for writing.
func (t *Tracker) commitLocked() (uint64, *models.Snapshot) {
	t.version++
	return t.version, t.snap.Clone()
}

// persist writes a committed snapshot. It is called after t.mu is released so
// readers are never blocked on storage.
func (t *Tracker) persist(ctx context.Context, op string, version uint64, snap *models.Snapshot) error {
	err := t.persister.save(ctx, version, snap)
	t.metrics.ObserveSave(err)
	if err != nil {
		t.logger.Error("Failed to save snapshot", "op", op, "version", version, "error", err)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (t *Tracker) observe(op string, err error) {
	t.metrics.ObserveMutation(op, outcome(err))
}

// Flush writes the current state again if the last write failed. It is a
// no-op when storage is up to date.
func (t *Tracker) Flush(ctx context.Context) error {
	t.mu.RLock()
	version, snap := t.version, t.snap.Clone()
	t.mu.RUnlock()

	retried, err := t.persister.flush(ctx, version, snap)
	if !retried {
		return nil
	}
	t.metrics.ObserveSave(err)
	if err != nil {
		t.logger.Warn("Snapshot flush failed", "version", version, "error", err)
		return &PersistenceError{Op: "save", Err: err}
	}
	t.logger.Info("Snapshot flushed", "version", version)
	return nil
}

// Unsaved reports whether the in-memory state is ahead of storage.
func (t *Tracker) Unsaved() bool {
	return t.persister.unsaved()
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() *models.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.Clone()
}

// today returns the local calendar date key.
func (t *Tracker) today() string {
	return models.DateKey(t.now())
}

// persister serializes snapshot writes. Versions are written in order and at
// most once. A version older than the newest one handed to storage is never
// written; while that newer write is failed, the older caller gets its error.
type persister struct {
	mu        sync.Mutex
	gw        Gateway
	written   uint64 // newest version in storage
	attempted uint64 // newest version handed to gw
	err       error  // failure of the attempted version, nil once it is stored
}

func (p *persister) save(ctx context.Context, version uint64, snap *models.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if version <= p.written {
		return nil
	}
	// attempted > written only after a failed write, so p.err is set here.
	if version < p.attempted {
		return p.err
	}

	p.attempted = version
	if err := p.gw.Save(ctx, snap); err != nil {
		p.err = err
		return err
	}
	p.written = version
	p.err = nil
	return nil
}

// flush retries the write of the given state if the previous write failed.
// It reports whether a write was attempted.
func (p *persister) flush(ctx context.Context, version uint64, snap *models.Snapshot) (bool, error) {
	if !p.unsaved() {
		return false, nil
	}
	return true, p.save(ctx, version, snap)
}

func (p *persister) unsaved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err != nil
}
