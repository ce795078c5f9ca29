package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmynk/tutortrack/internal/config"
	"github.com/mmynk/tutortrack/internal/metrics"
	"github.com/mmynk/tutortrack/internal/storage"
	"github.com/mmynk/tutortrack/internal/storage/bolt"
	"github.com/mmynk/tutortrack/internal/storage/memory"
	"github.com/mmynk/tutortrack/internal/storage/redis"
	"github.com/mmynk/tutortrack/internal/storage/sqlite"
	"github.com/mmynk/tutortrack/internal/tracker"
	"github.com/mmynk/tutortrack/pkg/logging"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "tutortrack",
		Short:        "Track tutoring sessions, class balances and earnings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default ./tutortrack.yaml)")

	root.AddCommand(
		newServeCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newHashPasscodeCmd(),
	)
	return root
}

// load reads the configuration and installs the logger.
func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.SetupWithLevel(level)
	return nil
}

// openStore opens the configured storage backend.
func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Path)
	case config.DriverBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return bolt.New(cfg.Path)
	case config.DriverRedis:
		return redis.New(redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// openTracker opens storage and loads the tracker. The returned gateway must
// be closed by the caller.
func (a *app) openTracker(ctx context.Context, m *metrics.Metrics) (*tracker.Tracker, *storage.Gateway, error) {
	store, err := openStore(a.cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.logger.Info("Storage opened", "driver", a.cfg.Storage.Driver, "key", a.cfg.Storage.Key)

	lang, err := a.cfg.ReportLanguage()
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	gw := storage.NewGateway(store, a.cfg.Storage.Key)
	tr := tracker.New(ctx, gw,
		tracker.WithLogger(a.logger),
		tracker.WithMetrics(m),
		tracker.WithLanguage(lang),
	)
	return tr, gw, nil
}
