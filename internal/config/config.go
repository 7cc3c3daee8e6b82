package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries all deployment-time settings. It is built once at
// startup and passed into the components that need it; nothing reads
// the environment after Load returns.
type Config struct {
	ListenAddr string

	// Tabular store (Google Sheets)
	SpreadsheetID   string
	SheetTab        string
	CredentialsFile string

	// Notification sink (SMTP)
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	NotifyRecipient string

	// Local submission archive
	DatabasePath string

	// Operator endpoints
	AdminKey string
}

// Load reads the configuration from the environment, applying defaults
// where a setting is optional.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		SpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
		SheetTab:        getEnv("SHEETS_TAB_NAME", "Submissions"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        getEnv("SMTP_FROM", "Landing Form <no-reply@localhost>"),
		NotifyRecipient: os.Getenv("NOTIFY_RECIPIENT"),
		DatabasePath:    getEnv("DATABASE_PATH", "./form_relay.db"),
		AdminKey:        os.Getenv("ADMIN_API_KEY"),
	}

	port := getEnv("SMTP_PORT", "587")
	smtpPort, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("config.Load(): invalid SMTP_PORT %q: %w", port, err)
	}
	cfg.SMTPPort = smtpPort

	if cfg.SpreadsheetID != "" && cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("config.Load(): SHEETS_SPREADSHEET_ID set but GOOGLE_APPLICATION_CREDENTIALS missing")
	}
	return cfg, nil
}

// SheetsEnabled reports whether a spreadsheet store is configured.
func (c *Config) SheetsEnabled() bool {
	return c.SpreadsheetID != ""
}

// MailEnabled reports whether a notification sink is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyRecipient != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
