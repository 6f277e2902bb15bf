package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("loads defaults with keys set", func(t *testing.T) {
		t.Setenv("PARTICIPANT_TOKEN_KEY", "participant-key")
		t.Setenv("JUDGE_TOKEN_KEY", "judge-key")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "participant-key", cfg.ParticipantTokenKey)
		assert.Equal(t, "judge-key", cfg.JudgeTokenKey)
	})

	t.Run("rejects missing keys", func(t *testing.T) {
		t.Setenv("PARTICIPANT_TOKEN_KEY", "")
		t.Setenv("JUDGE_TOKEN_KEY", "")

		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("rejects shared signing key", func(t *testing.T) {
		t.Setenv("PARTICIPANT_TOKEN_KEY", "same-key")
		t.Setenv("JUDGE_TOKEN_KEY", "same-key")

		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("rejects out-of-range bcrypt cost", func(t *testing.T) {
		t.Setenv("PARTICIPANT_TOKEN_KEY", "participant-key")
		t.Setenv("JUDGE_TOKEN_KEY", "judge-key")
		t.Setenv("BCRYPT_COST", "99")

		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("accepts tuned bcrypt cost", func(t *testing.T) {
		t.Setenv("PARTICIPANT_TOKEN_KEY", "participant-key")
		t.Setenv("JUDGE_TOKEN_KEY", "judge-key")
		t.Setenv("BCRYPT_COST", "4")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.BcryptCost)
	})
}
