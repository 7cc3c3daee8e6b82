package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "SHEETS_SPREADSHEET_ID", "SHEETS_TAB_NAME",
		"SMTP_HOST", "SMTP_PORT", "NOTIFY_RECIPIENT", "DATABASE_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Submissions", cfg.SheetTab)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "./form_relay.db", cfg.DatabasePath)
	assert.False(t, cfg.SheetsEnabled())
	assert.False(t, cfg.MailEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-123")
	t.Setenv("SHEETS_TAB_NAME", "Leads")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("NOTIFY_RECIPIENT", "owner@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "sheet-123", cfg.SpreadsheetID)
	assert.Equal(t, "Leads", cfg.SheetTab)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.SheetsEnabled())
	assert.True(t, cfg.MailEnabled())
}

func TestLoadInvalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSheetsWithoutCredentials(t *testing.T) {
	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	_, err := Load()
	assert.Error(t, err)
}
