package store

import (
	"context"
	"sort"
	"sync"

	"sportreg/internal/catalog/models"
	"sportreg/pkg/platform/sentinel"
)

// MemoryStore is an in-memory catalog store for unit tests and local
// development.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	sports map[int64]models.Sport
}

// NewMemory constructs a catalog store pre-seeded with the given titles.
func NewMemory(titles ...string) *MemoryStore {
	s := &MemoryStore{nextID: 1, sports: make(map[int64]models.Sport)}
	for _, title := range titles {
		s.sports[s.nextID] = models.Sport{ID: s.nextID, Title: title}
		s.nextID++
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]models.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sports := make([]models.Sport, 0, len(s.sports))
	for _, sp := range s.sports {
		sports = append(sports, sp)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i].ID < sports[j].ID })
	return sports, nil
}

func (s *MemoryStore) Create(_ context.Context, title string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.sports {
		if sp.Title == title {
			return 0, sentinel.ErrConflict
		}
	}
	id := s.nextID
	s.nextID++
	s.sports[id] = models.Sport{ID: id, Title: title}
	return id, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (models.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.sports[id]
	if !ok {
		return models.Sport{}, sentinel.ErrNotFound
	}
	return sp, nil
}
