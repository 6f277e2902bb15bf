package store

import (
	"context"
	"sort"
	"sync"

	catalogstore "sportreg/internal/catalog/store"
	"sportreg/internal/enrollment/models"
	identitystore "sportreg/internal/identity/store"
	"sportreg/pkg/platform/sentinel"
)

// MemoryStore is an in-memory enrollment ledger for unit tests and local
// development. It borrows the paired identity and catalog memory stores to
// mirror the database's foreign keys, joins, and participant-delete cascade.
type MemoryStore struct {
	mu          sync.RWMutex
	nextID      int64
	enrollments map[int64]models.Enrollment

	participants *identitystore.MemoryStore
	sports       *catalogstore.MemoryStore
}

// NewMemory constructs an in-memory ledger wired to its reference stores.
// The cascade hook keeps deletion semantics aligned with the schema.
func NewMemory(participants *identitystore.MemoryStore, sports *catalogstore.MemoryStore) *MemoryStore {
	s := &MemoryStore{
		nextID:       1,
		enrollments:  make(map[int64]models.Enrollment),
		participants: participants,
		sports:       sports,
	}
	participants.OnDeleteParticipant(s.deleteByParticipant)
	return s
}

func (s *MemoryStore) Create(ctx context.Context, participantID, sportID int64) (int64, error) {
	if _, err := s.participants.FindParticipantByID(ctx, participantID); err != nil {
		return 0, sentinel.ErrForeignKey
	}
	if _, err := s.sports.FindByID(ctx, sportID); err != nil {
		return 0, sentinel.ErrForeignKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.enrollments {
		if e.ParticipantID == participantID && e.SportID == sportID {
			return 0, sentinel.ErrConflict
		}
	}
	id := s.nextID
	s.nextID++
	s.enrollments[id] = models.Enrollment{ID: id, ParticipantID: participantID, SportID: sportID}
	return id, nil
}

func (s *MemoryStore) ListDetailed(ctx context.Context) ([]models.JudgeRow, error) {
	s.mu.RLock()
	ordered := make([]models.Enrollment, 0, len(s.enrollments))
	for _, e := range s.enrollments {
		ordered = append(ordered, e)
	}
	s.mu.RUnlock()
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	rows := make([]models.JudgeRow, 0, len(ordered))
	for _, e := range ordered {
		p, err := s.participants.FindParticipantByID(ctx, e.ParticipantID)
		if err != nil {
			continue
		}
		sp, err := s.sports.FindByID(ctx, e.SportID)
		if err != nil {
			continue
		}
		rows = append(rows, models.JudgeRow{
			ParticipantName:  p.Name,
			ParticipantPhone: p.Phone,
			SportTitle:       sp.Title,
		})
	}
	return rows, nil
}

func (s *MemoryStore) ListByParticipant(_ context.Context, participantID int64) ([]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Enrollment, 0)
	for _, e := range s.enrollments {
		if e.ParticipantID == participantID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) deleteByParticipant(participantID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.enrollments {
		if e.ParticipantID == participantID {
			delete(s.enrollments, id)
		}
	}
}
