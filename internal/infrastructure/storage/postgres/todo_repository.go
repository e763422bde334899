package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"taskpad/internal/domain/todo"
)

const todoColumns = "id, user_id, text, completed, created_at, updated_at"

type TodoRepository struct {
	owned ownedSet[todo.Todo]
	log   *slog.Logger
}

func NewTodoRepository(pool *pgxpool.Pool, log *slog.Logger) *TodoRepository {
	return &TodoRepository{
		owned: ownedSet[todo.Todo]{
			pool:     pool,
			table:    "todos",
			columns:  todoColumns,
			scanRow:  scanTodo,
			notFound: todo.ErrNotFound,
		},
		log: log.With("component", "todo_repository"),
	}
}

func scanTodo(row rowScanner) (*todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) List(ctx context.Context, ownerID int64) ([]todo.Todo, error) {
	return r.owned.selectOwned(ctx, ownerID, ` ORDER BY updated_at DESC, id DESC`)
}

func (r *TodoRepository) Get(ctx context.Context, ownerID, todoID int64) (*todo.Todo, error) {
	return r.owned.getOwned(ctx, ownerID, todoID)
}

func (r *TodoRepository) Create(ctx context.Context, t *todo.Todo) error {
	err := r.owned.pool.QueryRow(ctx,
		`INSERT INTO todos (user_id, text, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.Text, t.Completed,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create todo", "user_id", t.UserID, "error", err)
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Update(ctx context.Context, t *todo.Todo) error {
	updated, err := r.owned.updateOwned(ctx, t.UserID, t.ID,
		`text = $3, completed = $4, updated_at = NOW()`,
		t.Text, t.Completed)
	if err != nil {
		return err
	}
	*t = *updated
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, ownerID, todoID int64) error {
	return r.owned.deleteOwned(ctx, ownerID, todoID)
}
