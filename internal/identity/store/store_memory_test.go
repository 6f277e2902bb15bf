package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"sportreg/internal/identity/models"
	"sportreg/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func (s *MemoryStoreSuite) TestParticipantLifecycle() {
	ctx := context.Background()

	s.Run("create and find by phone", func() {
		id, err := s.store.CreateParticipant(ctx, models.Participant{
			Name: "Bat", Phone: "99001122", SecretHash: "hash",
		})
		s.Require().NoError(err)
		s.Positive(id)

		found, err := s.store.FindParticipantByPhone(ctx, "99001122")
		s.Require().NoError(err)
		s.Equal(id, found.ID)
		s.Equal("Bat", found.Name)
	})

	s.Run("duplicate phone conflicts", func() {
		_, err := s.store.CreateParticipant(ctx, models.Participant{
			Name: "Other", Phone: "99001122", SecretHash: "hash2",
		})
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("missing phone is not found", func() {
		_, err := s.store.FindParticipantByPhone(ctx, "00000000")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("delete removes and fires cascade hook", func() {
		var cascaded int64
		s.store.OnDeleteParticipant(func(id int64) { cascaded = id })

		p, err := s.store.FindParticipantByPhone(ctx, "99001122")
		s.Require().NoError(err)

		s.Require().NoError(s.store.DeleteParticipant(ctx, p.ID))
		s.Equal(p.ID, cascaded)

		_, err = s.store.FindParticipantByID(ctx, p.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		s.Require().ErrorIs(s.store.DeleteParticipant(ctx, p.ID), sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestJudgeNamespaceIsDisjoint() {
	ctx := context.Background()

	_, err := s.store.CreateParticipant(ctx, models.Participant{
		Name: "Bat", Phone: "shared-value", SecretHash: "hash",
	})
	s.Require().NoError(err)

	// A username equal in value to an existing phone must not conflict.
	id, err := s.store.CreateJudge(ctx, models.Judge{
		Name: "Judge", Username: "shared-value", SecretHash: "hash",
	})
	s.Require().NoError(err)

	found, err := s.store.FindJudgeByUsername(ctx, "shared-value")
	s.Require().NoError(err)
	s.Equal(id, found.ID)

	_, err = s.store.CreateJudge(ctx, models.Judge{
		Name: "Copy", Username: "shared-value", SecretHash: "hash",
	})
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}
