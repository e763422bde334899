package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"taskpad/internal/app/server/api/http/middleware/auth"
	"taskpad/internal/domain/note"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	// /api/notes/search is a literal path and must not be swallowed by {id}.
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}
	if notes == nil {
		notes = []note.Note{}
	}

	return &listOutput{Body: notes}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.Search(ctx, userID, input.Query)
	if err != nil {
		return nil, h.mapError(err)
	}
	if notes == nil {
		notes = []note.Note{}
	}

	return &listOutput{Body: notes}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &noteOutput{Body: *n}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Content)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &noteOutput{Body: *created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	updated, err := h.service.Update(ctx, userID, input.ID, note.Update{
		Title:   input.Body.Title,
		Content: input.Body.Content,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &noteOutput{Body: *updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{Body: deleteResponse{Message: "Note deleted successfully"}}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return huma.Error404NotFound("Note not found")
	case errors.Is(err, note.ErrTitleRequired):
		return huma.Error400BadRequest("Title is required")
	case errors.Is(err, note.ErrQueryRequired):
		return huma.Error400BadRequest("Search query is required")
	}
	h.log.Error("note request failed", "error", err)
	return huma.Error500InternalServerError("Server error")
}
