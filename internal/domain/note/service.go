package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID int64) ([]Note, error)
	Get(ctx context.Context, ownerID, noteID int64) (*Note, error)
	Create(ctx context.Context, ownerID int64, title, content string) (*Note, error)
	Update(ctx context.Context, ownerID, noteID int64, upd Update) (*Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
	Search(ctx context.Context, ownerID int64, query string) ([]Note, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Note, error) {
	notes, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *Service) Get(ctx context.Context, ownerID, noteID int64) (*Note, error) {
	n, err := s.repo.Get(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get note", "note_id", noteID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// Create stores a new note for ownerID. The owner always comes from the
// authenticated identity, never from the payload.
func (s *Service) Create(ctx context.Context, ownerID int64, title, content string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	n := &Note{
		UserID:  ownerID,
		Title:   title,
		Content: content,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("failed to create note", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_id", n.ID, "user_id", ownerID)
	return n, nil
}

// Update applies a partial update to an owned note, re-asserting the owner
// on the write so a payload cannot move the note to another user.
func (s *Service) Update(ctx context.Context, ownerID, noteID int64, upd Update) (*Note, error) {
	current, err := s.repo.Get(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get note for update: %w", err)
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, ErrTitleRequired
		}
		current.Title = *upd.Title
	}
	if upd.Content != nil {
		current.Content = *upd.Content
	}
	current.UserID = ownerID

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update note", "note_id", noteID, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("update note: %w", err)
	}

	return current, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, noteID int64) error {
	if err := s.repo.Delete(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete note", "note_id", noteID, "user_id", ownerID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", noteID, "user_id", ownerID)
	return nil
}

func (s *Service) Search(ctx context.Context, ownerID int64, query string) ([]Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}

	notes, err := s.repo.Search(ctx, ownerID, query)
	if err != nil {
		s.log.Error("failed to search notes", "user_id", ownerID, "query", query, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}
