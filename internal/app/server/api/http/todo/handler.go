package todo

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"taskpad/internal/app/server/api/http/middleware/auth"
	"taskpad/internal/domain/todo"
)

type Handler struct {
	service    todo.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service todo.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	todos, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}
	if todos == nil {
		todos = []todo.Todo{}
	}

	return &listOutput{Body: todos}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*todoOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Create(ctx, userID, input.Body.Text, input.Body.Completed)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &todoOutput{Body: *created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*todoOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	updated, err := h.service.Update(ctx, userID, input.ID, todo.Update{
		Text:      input.Body.Text,
		Completed: input.Body.Completed,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &todoOutput{Body: *updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{Body: deleteResponse{ID: input.ID}}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return huma.Error404NotFound("Todo not found")
	case errors.Is(err, todo.ErrTextRequired):
		return huma.Error400BadRequest("Please add a text value")
	}
	h.log.Error("todo request failed", "error", err)
	return huma.Error500InternalServerError("Server error")
}
