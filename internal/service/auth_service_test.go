package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/auth"
	"github.com/mmynk/tutortrack/internal/middleware"
	"github.com/mmynk/tutortrack/internal/storage"
	"github.com/mmynk/tutortrack/internal/storage/memory"
	"github.com/mmynk/tutortrack/internal/tracker"
	"github.com/mmynk/tutortrack/pkg/tutorapi"
	"github.com/mmynk/tutortrack/pkg/tutorapi/tutorapiconnect"
)

// setupLockedServer mounts both services with the passcode lock enabled.
func setupLockedServer(t *testing.T, passcode string) (tutorapiconnect.AuthServiceClient, tutorapiconnect.TutorServiceClient) {
	t.Helper()

	hash := ""
	if passcode != "" {
		var err error
		if hash, err = auth.HashPasscode(passcode); err != nil {
			t.Fatalf("HashPasscode failed: %v", err)
		}
	}
	authenticator := auth.NewPasscodeAuthenticator(hash)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	tr := tracker.New(context.Background(), storage.NewGateway(memory.New(), ""), tracker.WithLogger(discardLogger))

	authPath, authHandler := tutorapiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, discardLogger))
	tutorPath, tutorHandler := tutorapiconnect.NewTutorServiceHandler(
		NewTutorService(tr, false, discardLogger),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager, authenticator)),
	)

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(tutorPath, tutorHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return tutorapiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		tutorapiconnect.NewTutorServiceClient(http.DefaultClient, server.URL)
}

func TestUnlock(t *testing.T) {
	authClient, tutorClient := setupLockedServer(t, "2468")
	ctx := context.Background()

	t.Run("Locked without token", func(t *testing.T) {
		_, err := tutorClient.ListStudents(ctx, connect.NewRequest(&tutorapi.ListStudentsRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("Wrong passcode", func(t *testing.T) {
		_, err := authClient.Unlock(ctx, connect.NewRequest(&tutorapi.UnlockRequest{Passcode: "0000"}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("Empty passcode", func(t *testing.T) {
		_, err := authClient.Unlock(ctx, connect.NewRequest(&tutorapi.UnlockRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("Token unlocks the tutor service", func(t *testing.T) {
		resp, err := authClient.Unlock(ctx, connect.NewRequest(&tutorapi.UnlockRequest{Passcode: "2468"}))
		if err != nil {
			t.Fatalf("Unlock failed: %v", err)
		}
		if resp.Msg.Token == "" || resp.Msg.ExpiresAt <= time.Now().Unix() {
			t.Fatalf("unexpected unlock response %+v", resp.Msg)
		}

		req := connect.NewRequest(&tutorapi.ListStudentsRequest{})
		req.Header().Set("Authorization", "Bearer "+resp.Msg.Token)
		if _, err := tutorClient.ListStudents(ctx, req); err != nil {
			t.Fatalf("ListStudents with token failed: %v", err)
		}
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := connect.NewRequest(&tutorapi.ListStudentsRequest{})
		req.Header().Set("Authorization", "Token abc")
		_, err := tutorClient.ListStudents(ctx, req)
		assertCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestUnlock_NoPasscodeConfigured(t *testing.T) {
	authClient, tutorClient := setupLockedServer(t, "")
	ctx := context.Background()

	if _, err := tutorClient.ListStudents(ctx, connect.NewRequest(&tutorapi.ListStudentsRequest{})); err != nil {
		t.Fatalf("expected open access without a passcode, got %v", err)
	}
	if _, err := authClient.Unlock(ctx, connect.NewRequest(&tutorapi.UnlockRequest{})); err != nil {
		t.Fatalf("Unlock without passcode failed: %v", err)
	}
}
