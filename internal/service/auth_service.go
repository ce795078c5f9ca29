package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/auth"
	"github.com/mmynk/tutortrack/pkg/tutorapi"
	"github.com/mmynk/tutortrack/pkg/tutorapi/tutorapiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	tutorapiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Unlock checks the passcode and returns a session token.
func (s *AuthService) Unlock(ctx context.Context, req *connect.Request[tutorapi.UnlockRequest]) (*connect.Response[tutorapi.UnlockResponse], error) {
	s.logger.Info("Unlock request")

	if s.authenticator.Enabled() && req.Msg.Passcode == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidPasscode)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Passcode); err != nil {
		s.logger.Warn("Unlock failed", "error", err)
		if errors.Is(err, auth.ErrInvalidPasscode) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	// Generate JWT token
	token, expiresAt, err := s.jwtManager.Generate()
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Unlocked", "expires_at", expiresAt)
	return connect.NewResponse(&tutorapi.UnlockResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}
