// Package store persists principal records. Every call reflects current
// durable state; there is no caching layer in front of credentials.
package store

import (
	"context"

	"sportreg/internal/identity/models"
)

// Store is the credential store contract. Implementations return
// sentinel.ErrNotFound for lookup misses and sentinel.ErrConflict when a
// natural key (phone, username) already exists.
type Store interface {
	CreateParticipant(ctx context.Context, p models.Participant) (int64, error)
	FindParticipantByPhone(ctx context.Context, phone string) (models.Participant, error)
	FindParticipantByID(ctx context.Context, id int64) (models.Participant, error)
	DeleteParticipant(ctx context.Context, id int64) error

	CreateJudge(ctx context.Context, j models.Judge) (int64, error)
	FindJudgeByUsername(ctx context.Context, username string) (models.Judge, error)
}
