package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"sportreg/internal/catalog/models"
	"sportreg/pkg/platform/sentinel"
)

const pgUniqueViolation = "23505"

// PostgresStore persists sports in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed catalog store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Sport, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title FROM sports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	defer rows.Close()

	sports := make([]models.Sport, 0)
	for rows.Next() {
		var sp models.Sport
		if err := rows.Scan(&sp.ID, &sp.Title); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		sports = append(sports, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sports: %w", err)
	}
	return sports, nil
}

func (s *PostgresStore) Create(ctx context.Context, title string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sports (title) VALUES ($1) RETURNING id`, title,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return 0, sentinel.ErrConflict
		}
		return 0, fmt.Errorf("create sport: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (models.Sport, error) {
	var sp models.Sport
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title FROM sports WHERE id = $1`, id,
	).Scan(&sp.ID, &sp.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sport{}, sentinel.ErrNotFound
	}
	if err != nil {
		return models.Sport{}, fmt.Errorf("find sport: %w", err)
	}
	return sp, nil
}
