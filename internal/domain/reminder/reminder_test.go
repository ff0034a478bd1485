package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageForOverdue(t *testing.T) {
	tests := []struct {
		days      int
		wantStage Stage
		wantOK    bool
	}{
		{0, "", false},
		{6, "", false},
		{7, StageFirst, true},
		{13, StageFirst, true},
		{14, StageSecond, true},
		{29, StageSecond, true},
		{30, StageFinal, true},
		{365, StageFinal, true},
	}

	for _, tc := range tests {
		stage, ok := StageForOverdue(tc.days)
		assert.Equal(t, tc.wantOK, ok, "days %d", tc.days)
		if tc.wantOK {
			assert.Equal(t, tc.wantStage, stage, "days %d", tc.days)
		}
	}
}

func TestNewReminder(t *testing.T) {
	t.Run("valid reminder", func(t *testing.T) {
		rem, err := NewReminder(1, "0xPayee", "client@example.com", StageFirst, "subject", false)
		require.NoError(t, err)
		assert.Equal(t, uint(1), rem.InvoiceID())
		assert.Equal(t, StageFirst, rem.Stage())
		assert.False(t, rem.Manual())
		assert.False(t, rem.SentAt().IsZero())
	})

	t.Run("invalid stage rejected", func(t *testing.T) {
		_, err := NewReminder(1, "0xPayee", "client@example.com", Stage("weekly"), "subject", false)
		require.Error(t, err)
	})

	t.Run("missing recipient rejected", func(t *testing.T) {
		_, err := NewReminder(1, "0xPayee", "", StageFirst, "subject", false)
		require.Error(t, err)
	})
}

func TestPreferences(t *testing.T) {
	t.Run("enabled by default", func(t *testing.T) {
		prefs, err := NewPreferences("0xPayee")
		require.NoError(t, err)
		assert.True(t, prefs.Enabled())
		assert.Empty(t, prefs.ExcludedClients())
	})

	t.Run("empty payee rejected", func(t *testing.T) {
		_, err := NewPreferences("  ")
		require.Error(t, err)
	})

	t.Run("exclusion matching is case insensitive", func(t *testing.T) {
		prefs, err := NewPreferences("0xPayee")
		require.NoError(t, err)

		prefs.SetExcludedClients([]string{" Client@Example.COM "})
		assert.True(t, prefs.IsExcluded("client@example.com"))
		assert.True(t, prefs.IsExcluded("CLIENT@example.com"))
		assert.False(t, prefs.IsExcluded("other@example.com"))
	})

	t.Run("toggle enabled", func(t *testing.T) {
		prefs, err := NewPreferences("0xPayee")
		require.NoError(t, err)

		prefs.SetEnabled(false)
		assert.False(t, prefs.Enabled())
	})
}
