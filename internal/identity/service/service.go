// Package service implements registration and login for both principal
// roles. The two flows are structurally identical; the role-specific pieces
// (lookup key, token signing domain) are parameters, not copies.
package service

import (
	"context"
	"errors"
	"fmt"

	"sportreg/internal/identity/metrics"
	"sportreg/internal/identity/models"
	"sportreg/internal/identity/secrets"
	"sportreg/internal/identity/store"
	dErrors "sportreg/pkg/domain-errors"
	"sportreg/pkg/platform/sentinel"
)

// TokenIssuer mints a role-tagged session token for a principal.
type TokenIssuer interface {
	Issue(role models.Role, subjectID int64) (string, error)
}

// Service is the credential service for participants and judges.
type Service struct {
	store   store.Store
	hasher  *secrets.Hasher
	tokens  TokenIssuer
	metrics *metrics.Metrics
}

// New constructs the identity service.
func New(st store.Store, hasher *secrets.Hasher, tokens TokenIssuer, m *metrics.Metrics) *Service {
	return &Service{store: st, hasher: hasher, tokens: tokens, metrics: m}
}

// RegisterParticipant hashes the secret and inserts a new participant.
// The hash is computed before the store round trip so the expensive step
// never holds a transaction open. A phone collision surfaces as a conflict
// without revealing which field collided.
func (s *Service) RegisterParticipant(ctx context.Context, name, phone, secret string) (int64, error) {
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return 0, err
	}
	id, err := s.store.CreateParticipant(ctx, models.Participant{
		Name: name, Phone: phone, SecretHash: hash,
	})
	if err != nil {
		s.metrics.Registrations.WithLabelValues(string(models.RoleParticipant), "failure").Inc()
		return 0, registrationError(err)
	}
	s.metrics.Registrations.WithLabelValues(string(models.RoleParticipant), "success").Inc()
	return id, nil
}

// RegisterJudge is symmetric to RegisterParticipant, keyed on username.
func (s *Service) RegisterJudge(ctx context.Context, name, username, secret string) (int64, error) {
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return 0, err
	}
	id, err := s.store.CreateJudge(ctx, models.Judge{
		Name: name, Username: username, SecretHash: hash,
	})
	if err != nil {
		s.metrics.Registrations.WithLabelValues(string(models.RoleJudge), "failure").Inc()
		return 0, registrationError(err)
	}
	s.metrics.Registrations.WithLabelValues(string(models.RoleJudge), "success").Inc()
	return id, nil
}

// LoginParticipant verifies credentials and issues a participant token.
func (s *Service) LoginParticipant(ctx context.Context, phone, secret string) (string, error) {
	p, err := s.store.FindParticipantByPhone(ctx, phone)
	return s.login(models.RoleParticipant, p.ID, p.SecretHash, secret, err)
}

// LoginJudge verifies credentials and issues a judge token.
func (s *Service) LoginJudge(ctx context.Context, username, secret string) (string, error) {
	j, err := s.store.FindJudgeByUsername(ctx, username)
	return s.login(models.RoleJudge, j.ID, j.SecretHash, secret, err)
}

// DeleteParticipant removes the authenticated participant. Enrollment
// cleanup is the database's cascade, not ours.
func (s *Service) DeleteParticipant(ctx context.Context, id int64) error {
	err := s.store.DeleteParticipant(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "participant not found")
	}
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

// login folds lookup misses and secret mismatches into one outcome before
// they leave the service, so an external caller cannot probe which
// identities exist.
func (s *Service) login(role models.Role, subjectID int64, storedHash, secret string, lookupErr error) (string, error) {
	if lookupErr != nil {
		if errors.Is(lookupErr, sentinel.ErrNotFound) {
			s.metrics.Logins.WithLabelValues(string(role), "denied").Inc()
			return "", errBadCredentials()
		}
		return "", fmt.Errorf("login lookup: %w", lookupErr)
	}
	if !s.hasher.Verify(secret, storedHash) {
		s.metrics.Logins.WithLabelValues(string(role), "denied").Inc()
		return "", errBadCredentials()
	}
	token, err := s.tokens.Issue(role, subjectID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	s.metrics.Logins.WithLabelValues(string(role), "success").Inc()
	return token, nil
}

func errBadCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}

func registrationError(err error) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.New(dErrors.CodeConflict, "identity already registered")
	}
	return fmt.Errorf("register: %w", err)
}
