package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"sportreg/internal/identity/models"
	"sportreg/pkg/platform/sentinel"
)

// Postgres error codes we translate into sentinel errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore persists principals in PostgreSQL. Identity uniqueness is
// enforced by the UNIQUE constraints on phone and username; concurrent
// registrations with the same key resolve atomically in the database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed credential store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateParticipant(ctx context.Context, p models.Participant) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO participants (name, phone, secret_hash) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.Phone, p.SecretHash,
	).Scan(&id)
	if err != nil {
		return 0, translate("create participant", err)
	}
	return id, nil
}

func (s *PostgresStore) FindParticipantByPhone(ctx context.Context, phone string) (models.Participant, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, secret_hash FROM participants WHERE phone = $1`,
		phone,
	).Scan(&p.ID, &p.Name, &p.Phone, &p.SecretHash)
	if err != nil {
		return models.Participant{}, translate("find participant by phone", err)
	}
	return p, nil
}

func (s *PostgresStore) FindParticipantByID(ctx context.Context, id int64) (models.Participant, error) {
	var p models.Participant
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, secret_hash FROM participants WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Phone, &p.SecretHash)
	if err != nil {
		return models.Participant{}, translate("find participant by id", err)
	}
	return p, nil
}

// DeleteParticipant removes a participant. Enrollments referencing it are
// removed by the database through ON DELETE CASCADE, not by application
// code, so the guarantee holds under concurrent enrollment attempts.
func (s *PostgresStore) DeleteParticipant(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return translate("delete participant", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreateJudge(ctx context.Context, j models.Judge) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO judges (name, username, secret_hash) VALUES ($1, $2, $3) RETURNING id`,
		j.Name, j.Username, j.SecretHash,
	).Scan(&id)
	if err != nil {
		return 0, translate("create judge", err)
	}
	return id, nil
}

func (s *PostgresStore) FindJudgeByUsername(ctx context.Context, username string) (models.Judge, error) {
	var j models.Judge
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, username, secret_hash FROM judges WHERE username = $1`,
		username,
	).Scan(&j.ID, &j.Name, &j.Username, &j.SecretHash)
	if err != nil {
		return models.Judge{}, translate("find judge by username", err)
	}
	return j, nil
}

// translate maps driver errors onto sentinel errors, wrapping everything
// else with the operation for context.
func translate(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return sentinel.ErrConflict
		case pgForeignKeyViolation:
			return sentinel.ErrForeignKey
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
