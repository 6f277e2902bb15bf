// Package token issues and verifies role-tagged session tokens. Each role
// has its own signing key, so a token minted for one role can never verify
// under the other: the separation is structural, not a field check alone.
//
// Tokens carry no expiry claim and there is no revocation list. This is a
// known limitation carried over from the system's original behavior.
package token

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"sportreg/internal/identity/models"
	dErrors "sportreg/pkg/domain-errors"
)

// Claims is the signed claim set: subject ID plus the role it was minted
// for. The role field is fixed at issuance and never reinterpreted.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens for both signing domains.
type Service struct {
	keys map[models.Role][]byte
}

// NewService constructs the token service. Config guarantees the two keys
// are non-empty and distinct before this is reached.
func NewService(participantKey, judgeKey string) *Service {
	return &Service{
		keys: map[models.Role][]byte{
			models.RoleParticipant: []byte(participantKey),
			models.RoleJudge:       []byte(judgeKey),
		},
	}
}

// Issue produces a signed token binding {subjectID, role}.
func (s *Service) Issue(role models.Role, subjectID int64) (string, error) {
	key, ok := s.keys[role]
	if !ok {
		return "", fmt.Errorf("unknown role %q", role)
	}
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(subjectID, 10),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the token against the asserted role's key and returns
// the subject ID. Malformed tokens, signature mismatches, and wrong-role
// tokens all collapse to the same outcome; callers cannot learn why a token
// failed.
func (s *Service) Verify(role models.Role, tokenString string) (int64, error) {
	key, ok := s.keys[role]
	if !ok {
		return 0, errInvalidToken()
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return key, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errInvalidToken()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Role != string(role) {
		return 0, errInvalidToken()
	}
	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subjectID <= 0 {
		return 0, errInvalidToken()
	}
	return subjectID, nil
}

func errInvalidToken() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid token")
}
