package store

import (
	"context"
	"sync"

	"sportreg/internal/identity/models"
	"sportreg/pkg/platform/sentinel"
)

// MemoryStore is an in-memory credential store for unit tests and local
// development. It mirrors the Postgres store's sentinel error contract.
type MemoryStore struct {
	mu           sync.RWMutex
	nextID       int64
	participants map[int64]models.Participant
	judges       map[int64]models.Judge

	// onDeleteParticipant lets a paired enrollment memory store mirror the
	// database's cascade in tests. Nil outside test wiring.
	onDeleteParticipant func(participantID int64)
}

// NewMemory constructs an empty in-memory credential store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		nextID:       1,
		participants: make(map[int64]models.Participant),
		judges:       make(map[int64]models.Judge),
	}
}

// OnDeleteParticipant registers a cascade hook invoked after a participant
// is removed.
func (s *MemoryStore) OnDeleteParticipant(fn func(participantID int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDeleteParticipant = fn
}

func (s *MemoryStore) CreateParticipant(_ context.Context, p models.Participant) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.participants {
		if existing.Phone == p.Phone {
			return 0, sentinel.ErrConflict
		}
	}
	p.ID = s.nextID
	s.nextID++
	s.participants[p.ID] = p
	return p.ID, nil
}

func (s *MemoryStore) FindParticipantByPhone(_ context.Context, phone string) (models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.participants {
		if p.Phone == phone {
			return p, nil
		}
	}
	return models.Participant{}, sentinel.ErrNotFound
}

func (s *MemoryStore) FindParticipantByID(_ context.Context, id int64) (models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return models.Participant{}, sentinel.ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) DeleteParticipant(_ context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.participants[id]; !ok {
		s.mu.Unlock()
		return sentinel.ErrNotFound
	}
	delete(s.participants, id)
	cascade := s.onDeleteParticipant
	s.mu.Unlock()

	if cascade != nil {
		cascade(id)
	}
	return nil
}

func (s *MemoryStore) CreateJudge(_ context.Context, j models.Judge) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.judges {
		if existing.Username == j.Username {
			return 0, sentinel.ErrConflict
		}
	}
	j.ID = s.nextID
	s.nextID++
	s.judges[j.ID] = j
	return j.ID, nil
}

func (s *MemoryStore) FindJudgeByUsername(_ context.Context, username string) (models.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.judges {
		if j.Username == username {
			return j, nil
		}
	}
	return models.Judge{}, sentinel.ErrNotFound
}
