package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tutortrack/internal/auth"
	"github.com/mmynk/tutortrack/internal/jobs"
	"github.com/mmynk/tutortrack/internal/metrics"
	"github.com/mmynk/tutortrack/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect API, exports and front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	m := metrics.New()

	tr, gw, err := a.openTracker(ctx, m)
	if err != nil {
		return err
	}
	defer gw.Close()

	secret := a.cfg.Auth.JWTSecret
	if secret == "" {
		// Tokens are only issued when a passcode is set, and then the secret
		// is required by config validation.
		secret = uuid.NewString()
	}
	authenticator := auth.NewPasscodeAuthenticator(a.cfg.Auth.PasscodeHash)
	if !authenticator.Enabled() {
		a.logger.Warn("No passcode configured, the tracker is unlocked")
	}

	handler, err := server.New(server.Options{
		Tracker:       tr,
		Metrics:       m,
		JWTManager:    auth.NewJWTManager(secret, a.cfg.Auth.TokenTTL),
		Authenticator: authenticator,
		Breakdown:     a.cfg.Report.Breakdown,
		StaticPath:    a.cfg.Server.StaticPath,
		Logger:        a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to build handler: %w", err)
	}

	scheduler, err := jobs.New(tr, jobs.Config{
		FlushSpec:    a.cfg.Jobs.FlushSpec,
		RolloverSpec: a.cfg.Jobs.RolloverSpec,
	}, a.logger)
	if err != nil {
		return err
	}
	scheduler.Start()

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			scheduler.Stop(context.Background())
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
	}
	scheduler.Stop(shutdownCtx)

	if err := tr.Flush(shutdownCtx); err != nil {
		return fmt.Errorf("exiting with unsaved changes: %w", err)
	}
	return nil
}
