package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tutortrack/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SubjectKey is the context key for storing the authenticated token subject.
const SubjectKey contextKey = "subject"

// GetSubject extracts the token subject from the context.
// Returns empty string if not found.
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the subject to the request context. When no passcode is configured every
// request passes as the owner.
func RequireAuth(jwtManager *auth.JWTManager, authenticator auth.Authenticator) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !authenticator.Enabled() {
				return next(context.WithValue(ctx, SubjectKey, auth.OwnerSubject), req)
			}

			tokenString, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				slog.Warn("RPC rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			// Validate token
			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				slog.Warn("RPC rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			// Call the next handler with enriched context
			return next(context.WithValue(ctx, SubjectKey, claims.Subject), req)
		}
	}
}

// RequireAuthHTTP is RequireAuth for plain HTTP endpoints such as downloads.
// The token may also be passed as the "token" query parameter so links work
// without custom headers.
func RequireAuthHTTP(jwtManager *auth.JWTManager, authenticator auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticator.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := r.URL.Query().Get("token")
			if tokenString == "" {
				var err error
				if tokenString, err = bearerToken(r.Header.Get("Authorization")); err != nil {
					http.Error(w, err.Error(), http.StatusUnauthorized)
					return
				}
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), SubjectKey, claims.Subject)))
		})
	}
}

// bearerToken parses an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}
