package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	catalogstore "sportreg/internal/catalog/store"
	"sportreg/internal/enrollment/metrics"
	"sportreg/internal/enrollment/models"
	enrollmentstore "sportreg/internal/enrollment/store"
	identitymodels "sportreg/internal/identity/models"
	identitystore "sportreg/internal/identity/store"
	dErrors "sportreg/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	participants *identitystore.MemoryStore
	sports       *catalogstore.MemoryStore
	service      *Service

	batID        int64
	basketballID int64
	volleyballID int64
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctx := context.Background()
	s.participants = identitystore.NewMemory()
	s.sports = catalogstore.NewMemory("Basketball", "Volleyball")
	ledger := enrollmentstore.NewMemory(s.participants, s.sports)
	s.service = New(ledger, metrics.NewNop())

	var err error
	s.batID, err = s.participants.CreateParticipant(ctx, identitymodels.Participant{
		Name: "Bat", Phone: "99001122", SecretHash: "hash",
	})
	s.Require().NoError(err)

	basketball, err := s.sports.FindByID(ctx, 1)
	s.Require().NoError(err)
	s.basketballID = basketball.ID
	volleyball, err := s.sports.FindByID(ctx, 2)
	s.Require().NoError(err)
	s.volleyballID = volleyball.ID
}

func (s *ServiceSuite) TestEnroll() {
	ctx := context.Background()

	s.Run("first enrollment succeeds", func() {
		id, err := s.service.Enroll(ctx, s.batID, s.basketballID)
		s.Require().NoError(err)
		s.Positive(id)
	})

	s.Run("same pair again is a duplicate conflict", func() {
		_, err := s.service.Enroll(ctx, s.batID, s.basketballID)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("a different sport still succeeds", func() {
		id, err := s.service.Enroll(ctx, s.batID, s.volleyballID)
		s.Require().NoError(err)
		s.Positive(id)
	})

	s.Run("unknown sport is invalid input", func() {
		_, err := s.service.Enroll(ctx, s.batID, 9999)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("missing sport id is invalid input", func() {
		_, err := s.service.Enroll(ctx, s.batID, 0)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestListForJudge() {
	ctx := context.Background()

	_, err := s.service.Enroll(ctx, s.batID, s.basketballID)
	s.Require().NoError(err)
	_, err = s.service.Enroll(ctx, s.batID, s.volleyballID)
	s.Require().NoError(err)

	rows, err := s.service.ListForJudge(ctx)
	s.Require().NoError(err)
	s.Equal([]models.JudgeRow{
		{ParticipantName: "Bat", ParticipantPhone: "99001122", SportTitle: "Basketball"},
		{ParticipantName: "Bat", ParticipantPhone: "99001122", SportTitle: "Volleyball"},
	}, rows)
}

func (s *ServiceSuite) TestCascadeOnParticipantDelete() {
	ctx := context.Background()

	_, err := s.service.Enroll(ctx, s.batID, s.basketballID)
	s.Require().NoError(err)
	_, err = s.service.Enroll(ctx, s.batID, s.volleyballID)
	s.Require().NoError(err)

	s.Require().NoError(s.participants.DeleteParticipant(ctx, s.batID))

	rows, err := s.service.ListForJudge(ctx)
	s.Require().NoError(err)
	s.Empty(rows, "deleting a participant removes every referencing enrollment")
}
