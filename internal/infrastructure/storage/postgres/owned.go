package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// ownedSet is the single place where the ownership predicate is written.
// Todo and note repositories build on it instead of repeating
// "user_id = ..." filter literals per query: a repository that goes through
// ownedSet cannot read or touch another tenant's rows.
type ownedSet[T any] struct {
	pool    *pgxpool.Pool
	table   string
	columns string
	scanRow func(row rowScanner) (*T, error)
	// notFound is the domain sentinel returned when no owned row matches.
	notFound error
}

// getOwned fetches one row matching (id, owner). A row owned by someone
// else yields notFound, same as a missing row.
func (s *ownedSet[T]) getOwned(ctx context.Context, ownerID, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND user_id = $2`, s.columns, s.table)

	v, err := s.scanRow(s.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("get from %s: %w", s.table, err)
	}
	return v, nil
}

// selectOwned runs a multi-row select scoped to ownerID. tail is appended
// after the ownership predicate and may reference $2 onward for args.
func (s *ownedSet[T]) selectOwned(ctx context.Context, ownerID int64, tail string, args ...any) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id = $1%s`, s.columns, s.table, tail)

	rows, err := s.pool.Query(ctx, query, append([]any{ownerID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := s.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// updateOwned writes setClause against the row matching (id, owner) and
// returns the updated row. setClause may reference $3 onward for args.
func (s *ownedSet[T]) updateOwned(ctx context.Context, ownerID, id int64, setClause string, args ...any) (*T, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 AND user_id = $2 RETURNING %s`,
		s.table, setClause, s.columns)

	v, err := s.scanRow(s.pool.QueryRow(ctx, query, append([]any{id, ownerID}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("update %s: %w", s.table, err)
	}
	return v, nil
}

func (s *ownedSet[T]) deleteOwned(ctx context.Context, ownerID, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, s.table)

	result, err := s.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", s.table, err)
	}
	if result.RowsAffected() == 0 {
		return s.notFound
	}
	return nil
}
