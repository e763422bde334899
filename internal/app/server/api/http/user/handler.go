package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"taskpad/internal/app/server/api/http/middleware/auth"
	"taskpad/internal/domain/token"
	"taskpad/internal/domain/user"
)

type Handler struct {
	service   user.Servicer
	tokens    token.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler takes two middleware chains: register/login stay public,
// the profile endpoint requires a resolved identity.
func NewHandler(service user.Servicer, tokens token.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	profile, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error400BadRequest("Email already registered")
		}
		h.log.Error("registration failed", "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	return &registerOutput{Body: profile}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		h.log.Error("login failed", "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	bearer, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.log.Error("token issue failed", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	return &loginOutput{
		Body: LoginResponse{
			User:  u.Profile(),
			Token: bearer,
		},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	profile, err := h.service.Get(ctx, userID)
	if err != nil {
		// The middleware resolved this identity moments ago; treat a miss
		// as the credential going stale rather than a server fault.
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		h.log.Error("profile lookup failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	return &meOutput{Body: profile}, nil
}
