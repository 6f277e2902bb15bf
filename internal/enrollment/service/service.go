// Package service implements the enrollment ledger operations on top of the
// store's constraint guarantees.
package service

import (
	"context"
	"errors"
	"fmt"

	"sportreg/internal/enrollment/metrics"
	"sportreg/internal/enrollment/models"
	"sportreg/internal/enrollment/store"
	dErrors "sportreg/pkg/domain-errors"
	"sportreg/pkg/platform/sentinel"
)

// Service is the enrollment ledger.
type Service struct {
	store   store.Store
	metrics *metrics.Metrics
}

// New constructs the enrollment service.
func New(st store.Store, m *metrics.Metrics) *Service {
	return &Service{store: st, metrics: m}
}

// Enroll records a participant joining a sport. A duplicate pair surfaces
// as a conflict rather than an idempotent success: the caller must learn
// that the constraint fired.
func (s *Service) Enroll(ctx context.Context, participantID, sportID int64) (int64, error) {
	if participantID <= 0 || sportID <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "sport_id is required")
	}
	id, err := s.store.Create(ctx, participantID, sportID)
	if err != nil {
		s.metrics.Enrollments.WithLabelValues("failure").Inc()
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			return 0, dErrors.New(dErrors.CodeConflict, "already enrolled in this sport")
		case errors.Is(err, sentinel.ErrForeignKey):
			return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown sport or participant")
		default:
			return 0, fmt.Errorf("enroll: %w", err)
		}
	}
	s.metrics.Enrollments.WithLabelValues("success").Inc()
	return id, nil
}

// ListForJudge returns every enrollment joined with participant and sport,
// in insertion order.
func (s *Service) ListForJudge(ctx context.Context) ([]models.JudgeRow, error) {
	rows, err := s.store.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list for judge: %w", err)
	}
	return rows, nil
}
