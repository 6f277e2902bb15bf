//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"sportreg/internal/enrollment/models"
	"sportreg/internal/enrollment/store"
	identitymodels "sportreg/internal/identity/models"
	identitystore "sportreg/internal/identity/store"
	"sportreg/pkg/platform/sentinel"
	"sportreg/pkg/testutil/containers"
)

type PostgresLedgerSuite struct {
	suite.Suite
	postgres     *containers.PostgresContainer
	ledger       *store.PostgresStore
	participants *identitystore.PostgresStore

	batID        int64
	basketballID int64
	volleyballID int64
}

func TestPostgresLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresLedgerSuite))
}

func (s *PostgresLedgerSuite) SetupSuite() {
	s.postgres = containers.GetPostgres(s.T())
	s.ledger = store.NewPostgres(s.postgres.DB)
	s.participants = identitystore.NewPostgres(s.postgres.DB)
}

func (s *PostgresLedgerSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "enrollments", "participants")
	s.Require().NoError(err)

	s.batID, err = s.participants.CreateParticipant(ctx, identitymodels.Participant{
		Name: "Bat", Phone: "99001122", SecretHash: "h",
	})
	s.Require().NoError(err)

	// Seeded by EnsureSchema; ids are stable after RESTART IDENTITY only for
	// truncated tables, so resolve sports by title.
	s.basketballID = s.sportID(ctx, "Basketball")
	s.volleyballID = s.sportID(ctx, "Volleyball")
}

func (s *PostgresLedgerSuite) sportID(ctx context.Context, title string) int64 {
	var id int64
	err := s.postgres.DB.QueryRowContext(ctx,
		`SELECT id FROM sports WHERE title = $1`, title).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *PostgresLedgerSuite) TestPairUniqueness() {
	ctx := context.Background()

	first, err := s.ledger.Create(ctx, s.batID, s.basketballID)
	s.Require().NoError(err)
	s.Positive(first)

	_, err = s.ledger.Create(ctx, s.batID, s.basketballID)
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	// A second, distinct sport still works.
	second, err := s.ledger.Create(ctx, s.batID, s.volleyballID)
	s.Require().NoError(err)
	s.Greater(second, first)
}

func (s *PostgresLedgerSuite) TestForeignKeyViolations() {
	ctx := context.Background()

	_, err := s.ledger.Create(ctx, s.batID, 999999)
	s.Require().ErrorIs(err, sentinel.ErrForeignKey)

	_, err = s.ledger.Create(ctx, 999999, s.basketballID)
	s.Require().ErrorIs(err, sentinel.ErrForeignKey)
}

func (s *PostgresLedgerSuite) TestListDetailedJoin() {
	ctx := context.Background()

	_, err := s.ledger.Create(ctx, s.batID, s.basketballID)
	s.Require().NoError(err)
	_, err = s.ledger.Create(ctx, s.batID, s.volleyballID)
	s.Require().NoError(err)

	rows, err := s.ledger.ListDetailed(ctx)
	s.Require().NoError(err)
	s.Equal([]models.JudgeRow{
		{ParticipantName: "Bat", ParticipantPhone: "99001122", SportTitle: "Basketball"},
		{ParticipantName: "Bat", ParticipantPhone: "99001122", SportTitle: "Volleyball"},
	}, rows)
}

// TestConcurrentEnrollment verifies the pair constraint resolves races in
// the database: exactly one of many identical enrollments wins.
func (s *PostgresLedgerSuite) TestConcurrentEnrollment() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ledger.Create(ctx, s.batID, s.basketballID)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, sentinel.ErrConflict):
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one enrollment should win")
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

// TestCascadeCompleteness deletes a participant while enrollments for them
// keep arriving and verifies no orphaned rows survive.
func (s *PostgresLedgerSuite) TestCascadeCompleteness() {
	ctx := context.Background()

	_, err := s.ledger.Create(ctx, s.batID, s.basketballID)
	s.Require().NoError(err)
	_, err = s.ledger.Create(ctx, s.batID, s.volleyballID)
	s.Require().NoError(err)

	// A third sport the participant has not joined yet, so the concurrent
	// insert below is a genuine race against the delete.
	var raceSportID int64
	err = s.postgres.DB.QueryRowContext(ctx,
		`INSERT INTO sports (title) VALUES ('Cascade Race') ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title RETURNING id`,
	).Scan(&raceSportID)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Races the delete below; either outcome is fine, orphans are not.
		_, _ = s.ledger.Create(ctx, s.batID, raceSportID)
	}()

	s.Require().NoError(s.participants.DeleteParticipant(ctx, s.batID))
	wg.Wait()

	// However the race resolved, zero rows may reference the participant,
	// and a post-delete insert fails on the FK.
	remaining, err := s.ledger.ListByParticipant(ctx, s.batID)
	s.Require().NoError(err)
	s.Empty(remaining, "orphaned enrollments after participant delete")

	_, err = s.ledger.Create(ctx, s.batID, s.basketballID)
	s.Require().ErrorIs(err, sentinel.ErrForeignKey)
}
