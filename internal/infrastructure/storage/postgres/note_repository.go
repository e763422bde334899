package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"taskpad/internal/domain/note"
)

const noteColumns = "id, user_id, title, content, created_at, updated_at"

type NoteRepository struct {
	owned ownedSet[note.Note]
	log   *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		owned: ownedSet[note.Note]{
			pool:     pool,
			table:    "notes",
			columns:  noteColumns,
			scanRow:  scanNote,
			notFound: note.ErrNotFound,
		},
		log: log.With("component", "note_repository"),
	}
}

func scanNote(row rowScanner) (*note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) List(ctx context.Context, ownerID int64) ([]note.Note, error) {
	return r.owned.selectOwned(ctx, ownerID, ` ORDER BY updated_at DESC, id DESC`)
}

func (r *NoteRepository) Get(ctx context.Context, ownerID, noteID int64) (*note.Note, error) {
	return r.owned.getOwned(ctx, ownerID, noteID)
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	err := r.owned.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		n.UserID, n.Title, n.Content,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create note", "user_id", n.UserID, "error", err)
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	updated, err := r.owned.updateOwned(ctx, n.UserID, n.ID,
		`title = $3, content = $4, updated_at = NOW()`,
		n.Title, n.Content)
	if err != nil {
		return err
	}
	*n = *updated
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID int64) error {
	return r.owned.deleteOwned(ctx, ownerID, noteID)
}

// Search matches the query against the note's indexed title and content and
// orders results by rank, best match first. The search stays inside the
// caller's rows via the shared ownership predicate.
func (r *NoteRepository) Search(ctx context.Context, ownerID int64, query string) ([]note.Note, error) {
	notes, err := r.owned.selectOwned(ctx, ownerID,
		` AND search_vector @@ plainto_tsquery('english', $2)
		 ORDER BY ts_rank(search_vector, plainto_tsquery('english', $2)) DESC, updated_at DESC`,
		query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}
