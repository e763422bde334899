package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"taskpad/internal/domain/token"
	"taskpad/internal/domain/user"
)

const bearerPrefix = "Bearer "

// Auth resolves the request identity before any protected handler runs:
// extract the bearer token, verify it, confirm the subject still exists,
// and put the user id into the request context. Any failure ends the
// request with 401; there is no fallback identity.
type Auth struct {
	tokens token.Servicer
	users  user.Servicer
	log    *slog.Logger
}

func New(tokens token.Servicer, users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		users:  users,
		log:    log.With("component", "auth_middleware"),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.log.Debug("no bearer token on request", "path", ctx.URL().Path)
			unauthorized(ctx)
			return
		}

		userID, err := a.tokens.Verify(header[len(bearerPrefix):])
		if err != nil {
			a.log.Debug("token verification failed", "path", ctx.URL().Path, "error", err)
			unauthorized(ctx)
			return
		}

		// The token may outlive its user; a deleted account must not keep
		// a working credential.
		if _, err := a.users.Get(ctx.Context(), userID); err != nil {
			a.log.Debug("token subject no longer exists", "user_id", userID, "error", err)
			unauthorized(ctx)
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}

func unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
