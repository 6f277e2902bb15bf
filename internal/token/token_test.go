package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportreg/internal/identity/models"
)

func newTestService() *Service {
	return NewService("participant-signing-key", "judge-signing-key")
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService()

	t.Run("round trip per role", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleParticipant, models.RoleJudge} {
			tok, err := svc.Issue(role, 42)
			require.NoError(t, err)

			subject, err := svc.Verify(role, tok)
			require.NoError(t, err)
			assert.Equal(t, int64(42), subject)
		}
	})

	t.Run("unknown role cannot issue", func(t *testing.T) {
		_, err := svc.Issue(models.Role("admin"), 1)
		require.Error(t, err)
	})
}

func TestCrossRoleRejection(t *testing.T) {
	svc := newTestService()

	for _, subjectID := range []int64{1, 42, 1 << 40} {
		participantToken, err := svc.Issue(models.RoleParticipant, subjectID)
		require.NoError(t, err)
		judgeToken, err := svc.Issue(models.RoleJudge, subjectID)
		require.NoError(t, err)

		_, err = svc.Verify(models.RoleJudge, participantToken)
		require.Error(t, err, "participant token must not verify as judge")

		_, err = svc.Verify(models.RoleParticipant, judgeToken)
		require.Error(t, err, "judge token must not verify as participant")
	}
}

func TestVerifyFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService()

	valid, err := svc.Issue(models.RoleParticipant, 7)
	require.NoError(t, err)

	// A token signed with the participant key but claiming the judge role:
	// the signature checks out under the participant domain, the role does
	// not.
	wrongRole := signWith(t, "participant-signing-key", Claims{
		Role:             string(models.RoleJudge),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
	})

	// A token with the right role claim but a forged signature.
	forged := signWith(t, "attacker-key", Claims{
		Role:             string(models.RoleParticipant),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
	})

	// A token with a non-numeric subject.
	badSubject := signWith(t, "participant-signing-key", Claims{
		Role:             string(models.RoleParticipant),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	})

	cases := map[string]string{
		"malformed":     "not.a.jwt",
		"empty":         "",
		"wrong role":    wrongRole,
		"forged":        forged,
		"bad subject":   badSubject,
		"cross domain":  mustIssue(t, svc, models.RoleJudge, 7),
		"trailing junk": valid + "x",
	}

	var messages []string
	for name, tok := range cases {
		_, err := svc.Verify(models.RoleParticipant, tok)
		require.Error(t, err, name)
		messages = append(messages, err.Error())
	}
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg, "all failures must collapse to one outcome")
	}

	// The valid token still verifies after all the failures above.
	subject, err := svc.Verify(models.RoleParticipant, valid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), subject)
}

func signWith(t *testing.T, key string, claims Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func mustIssue(t *testing.T, svc *Service, role models.Role, subjectID int64) string {
	t.Helper()
	tok, err := svc.Issue(role, subjectID)
	require.NoError(t, err)
	return tok
}
