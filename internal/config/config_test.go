package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv removes keys for the duration of a test so envDefault values
// apply regardless of what the developer's shell exports. t.Setenv
// registers the restore; Unsetenv then drops the key entirely.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadRequiresResendKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "RESEND_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_123")
	clearEnv(t,
		"SERVER_ADDR",
		"NOTIFICATION_EMAIL",
		"FROM_EMAIL",
		"GOOGLE_SHEET_ID",
		"CLICKUP_API_TOKEN",
		"CLICKUP_FIELD_CONTACT_EMAIL",
	)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "info@heartandsoulhc.org", cfg.NotificationEmail)
	assert.Equal(t, "notifications@heartandsoulhc.org", cfg.FromEmail)
	// Optional channel groups default to unset; their absence only
	// degrades the matching channel.
	assert.Empty(t, cfg.GoogleSheetID)
	assert.Empty(t, cfg.ClickUpAPIToken)
	// Field ids always have workspace defaults.
	assert.NotEmpty(t, cfg.ClickUpFields.ContactEmail)
}

func TestLoadFieldIDOverride(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_123")
	t.Setenv("CLICKUP_FIELD_SUBJECT", "rebuilt-workspace-id")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rebuilt-workspace-id", cfg.ClickUpFields.Subject)
}
