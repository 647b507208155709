package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sevigo/quality-warden/internal/core"
)

// UserResolver finds the user owning an API token.
type UserResolver interface {
	UserByToken(ctx context.Context, token string) (*core.UserRef, error)
}

type actorKey struct{}

// ActorFromContext returns the authenticated user id, or 0 for anonymous requests.
func ActorFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(actorKey{}).(int64)
	return id
}

// WithActor returns a copy of ctx carrying the given user id.
func WithActor(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// Authenticate resolves the bearer token of each request to a user. Requests
// whose token is missing, unknown or cannot be looked up continue anonymously
// and are rejected by the service, after the lockdown check.
func Authenticate(users UserResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.UserByToken(r.Context(), token)
			switch {
			case err == nil:
				r = r.WithContext(WithActor(r.Context(), user.UserID))
			case errors.Is(err, core.ErrNoRecord):
				logger.Debug("unknown api token", "remote", r.RemoteAddr)
			default:
				logger.Error("failed to resolve api token", "remote", r.RemoteAddr, "error", err)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
