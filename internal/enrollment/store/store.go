// Package store persists enrollments. The (participant, sport) uniqueness
// and the cascade on principal/sport deletion are database constraints;
// implementations only translate violations into sentinel errors.
package store

import (
	"context"

	"sportreg/internal/enrollment/models"
)

// Store is the enrollment ledger contract. Create returns
// sentinel.ErrConflict for a duplicate pair and sentinel.ErrForeignKey when
// either referenced entity no longer exists.
type Store interface {
	Create(ctx context.Context, participantID, sportID int64) (int64, error)
	ListDetailed(ctx context.Context) ([]models.JudgeRow, error)
	ListByParticipant(ctx context.Context, participantID int64) ([]models.Enrollment, error)
}
