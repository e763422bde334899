package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID int64) ([]Todo, error)
	Get(ctx context.Context, ownerID, todoID int64) (*Todo, error)
	Create(ctx context.Context, ownerID int64, text string, completed bool) (*Todo, error)
	Update(ctx context.Context, ownerID, todoID int64, upd Update) (*Todo, error)
	Delete(ctx context.Context, ownerID, todoID int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "todo_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	todos, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list todos", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Service) Get(ctx context.Context, ownerID, todoID int64) (*Todo, error) {
	t, err := s.repo.Get(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get todo", "todo_id", todoID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

// Create stores a new todo for ownerID. The owner always comes from the
// authenticated identity, never from the payload.
func (s *Service) Create(ctx context.Context, ownerID int64, text string, completed bool) (*Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	t := &Todo{
		UserID:    ownerID,
		Text:      text,
		Completed: completed,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.log.Error("failed to create todo", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.Info("todo created", "todo_id", t.ID, "user_id", ownerID)
	return t, nil
}

// Update applies a partial update to an owned todo. The current row is
// fetched with the owner filter first, so a foreign id fails as NotFound
// before anything is written, and UserID is re-asserted on the write.
func (s *Service) Update(ctx context.Context, ownerID, todoID int64, upd Update) (*Todo, error) {
	current, err := s.repo.Get(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get todo for update: %w", err)
	}

	if upd.Text != nil {
		if strings.TrimSpace(*upd.Text) == "" {
			return nil, ErrTextRequired
		}
		current.Text = *upd.Text
	}
	if upd.Completed != nil {
		current.Completed = *upd.Completed
	}
	current.UserID = ownerID

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update todo", "todo_id", todoID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("update todo: %w", err)
	}

	return current, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, todoID int64) error {
	if err := s.repo.Delete(ctx, ownerID, todoID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete todo", "todo_id", todoID, "user_id", ownerID, "error", err)
		return fmt.Errorf("delete todo: %w", err)
	}

	s.log.Info("todo deleted", "todo_id", todoID, "user_id", ownerID)
	return nil
}
