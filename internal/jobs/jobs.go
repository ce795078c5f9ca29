// Package jobs runs the tracker's periodic maintenance on a cron schedule:
// retrying a snapshot write that failed, and clearing today's check-ins at
// the day boundary.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// flushTimeout bounds one retry of the snapshot write.
const flushTimeout = 30 * time.Second

// Target is the part of the tracker the jobs drive.
type Target interface {
	Flush(ctx context.Context) error
	Unsaved() bool
	ResetSelections()
}

// Config holds the cron specs of each job. An empty spec disables the job.
type Config struct {
	FlushSpec    string
	RolloverSpec string
}

// Scheduler owns the cron runner.
type Scheduler struct {
	cron   *cron.Cron
	target Target
	logger *slog.Logger
}

// New registers the jobs. Specs use the standard five-field cron syntax or
// descriptors such as "@every 1m".
func New(target Target, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	adapter := cronLogger{logger: logger}
	s := &Scheduler{
		cron:   cron.New(cron.WithLogger(adapter), cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter))),
		target: target,
		logger: logger,
	}

	if cfg.FlushSpec != "" {
		if _, err := s.cron.AddFunc(cfg.FlushSpec, s.flush); err != nil {
			return nil, fmt.Errorf("invalid flush schedule %q: %w", cfg.FlushSpec, err)
		}
	}
	if cfg.RolloverSpec != "" {
		if _, err := s.cron.AddFunc(cfg.RolloverSpec, s.rollover); err != nil {
			return nil, fmt.Errorf("invalid rollover schedule %q: %w", cfg.RolloverSpec, err)
		}
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Jobs started", "jobs", len(s.cron.Entries()))
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Jobs still running at shutdown")
	}
}

// flush retries the snapshot write when the last one failed.
func (s *Scheduler) flush() {
	if !s.target.Unsaved() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	// Flush logs the outcome
	_ = s.target.Flush(ctx)
}

// rollover starts a new day with every student unselected.
func (s *Scheduler) rollover() {
	s.target.ResetSelections()
	s.logger.Info("Selections reset for the new day")
}

// cronLogger routes cron's own logging through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
