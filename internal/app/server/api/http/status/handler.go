package status

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
}

func (h *Handler) status(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("status request received")

	return &Output{
		Body: Response{
			Message: "Taskpad API server is running",
			Version: "1.0.0",
		},
	}, nil
}
