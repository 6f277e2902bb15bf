package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"sportreg/internal/enrollment/models"
	"sportreg/pkg/platform/sentinel"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore persists enrollments in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed enrollment store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the enrollment. Concurrent attempts on the same pair race
// on the UNIQUE constraint; exactly one insert wins.
func (s *PostgresStore) Create(ctx context.Context, participantID, sportID int64) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO enrollments (participant_id, sport_id) VALUES ($1, $2) RETURNING id`,
		participantID, sportID,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pgUniqueViolation:
				return 0, sentinel.ErrConflict
			case pgForeignKeyViolation:
				return 0, sentinel.ErrForeignKey
			}
		}
		return 0, fmt.Errorf("create enrollment: %w", err)
	}
	return id, nil
}

// ListDetailed returns one row per enrollment joined with participant and
// sport, ordered by enrollment id for a deterministic result.
func (s *PostgresStore) ListDetailed(ctx context.Context) ([]models.JudgeRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.name, p.phone, sp.title
		FROM enrollments e
		JOIN participants p ON e.participant_id = p.id
		JOIN sports sp ON e.sport_id = sp.id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	result := make([]models.JudgeRow, 0)
	for rows.Next() {
		var row models.JudgeRow
		if err := rows.Scan(&row.ParticipantName, &row.ParticipantPhone, &row.SportTitle); err != nil {
			return nil, fmt.Errorf("scan enrollment row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrollments: %w", err)
	}
	return result, nil
}

// ListByParticipant returns the participant's enrollments ordered by id.
func (s *PostgresStore) ListByParticipant(ctx context.Context, participantID int64) ([]models.Enrollment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, participant_id, sport_id FROM enrollments WHERE participant_id = $1 ORDER BY id`,
		participantID)
	if err != nil {
		return nil, fmt.Errorf("list by participant: %w", err)
	}
	defer rows.Close()

	result := make([]models.Enrollment, 0)
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.ParticipantID, &e.SportID); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrollments: %w", err)
	}
	return result, nil
}
