package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config is the full environment surface of the service. The Resend key
// is the only hard requirement: without it the submission pipeline cannot
// notify staff and startup fails. Each optional group (Google Sheets,
// ClickUp, maps) degrades only its own channel when absent.
type Config struct {
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	DatabaseURL string `env:"DATABASE_URL" envDefault:"heartandsoul.db"`

	// Email channel (required)
	ResendAPIKey      string `env:"RESEND_API_KEY"`
	NotificationEmail string `env:"NOTIFICATION_EMAIL" envDefault:"info@heartandsoulhc.org"`
	FromEmail         string `env:"FROM_EMAIL" envDefault:"notifications@heartandsoulhc.org"`

	// Ledger channel (optional)
	GoogleServiceAccountEmail string `env:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `env:"GOOGLE_PRIVATE_KEY"`
	GoogleSheetID             string `env:"GOOGLE_SHEET_ID"`

	// Task channel (optional)
	ClickUpAPIToken       string `env:"CLICKUP_API_TOKEN"`
	ClickUpContactListID  string `env:"CLICKUP_CONTACT_LIST_ID"`
	ClickUpReferralListID string `env:"CLICKUP_REFERRAL_LIST_ID"`

	// ClickUp custom-field ids. The defaults are the fields provisioned in
	// the agency workspace; overridable so a rebuilt workspace only needs
	// env changes.
	ClickUpFields ClickUpFieldIDs

	// Map display (optional, passed through to the front end)
	MapsAPIKey string `env:"MAPS_API_KEY"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`
}

// ClickUpFieldIDs maps logical submission fields to workspace field ids.
type ClickUpFieldIDs struct {
	ContactName  string `env:"CLICKUP_FIELD_CONTACT_NAME" envDefault:"a1f0c9e2-6b3d-4f81-9c47-2d5e8a0b1c3f"`
	ContactEmail string `env:"CLICKUP_FIELD_CONTACT_EMAIL" envDefault:"b4d2e8a1-9c5f-4e37-8a12-6f0d3b7c9e21"`
	ContactPhone string `env:"CLICKUP_FIELD_CONTACT_PHONE" envDefault:"c7a9f1d4-2e8b-4c63-b095-1a4f6d8e0b72"`
	Subject      string `env:"CLICKUP_FIELD_SUBJECT" envDefault:"d2c5b8f0-7a1e-4d94-a368-5e9c0f2a4d16"`
	Message      string `env:"CLICKUP_FIELD_MESSAGE" envDefault:"e8f3a6c1-4d7b-4a25-9f80-3b6d1e5c7a94"`

	ClientName      string `env:"CLICKUP_FIELD_CLIENT_NAME" envDefault:"f1b4d7e0-8c2a-4f58-b613-9a0e4c6f8d25"`
	ClientDOB       string `env:"CLICKUP_FIELD_CLIENT_DOB" envDefault:"0a3c6e9f-1d4b-4872-a5f9-7c2e5b8d0f41"`
	ClientPhone     string `env:"CLICKUP_FIELD_CLIENT_PHONE" envDefault:"1c5e8a0b-3f6d-4b91-8e24-0d7f2a4c6e83"`
	ProgramInterest string `env:"CLICKUP_FIELD_PROGRAM" envDefault:"2e7a0c3d-5b8f-4da6-9137-4f1a6c9e0b52"`
	ReferrerName    string `env:"CLICKUP_FIELD_REFERRER_NAME" envDefault:"3f9c2e5b-7d0a-4e68-af45-8b3d7f0a2c64"`
	ReferrerPhone   string `env:"CLICKUP_FIELD_REFERRER_PHONE" envDefault:"4a0e3f6c-9b2d-4705-b859-1c5f8a3e6d07"`
	ReferralDate    string `env:"CLICKUP_FIELD_REFERRAL_DATE" envDefault:"5b2f4a7d-0c3e-4816-9a60-2d6a9c4f7e18"`
	ServiceNeeds    string `env:"CLICKUP_FIELD_SERVICE_NEEDS" envDefault:"6c4a5b8e-1d0f-4927-8b71-3e7b0d5a8f29"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.ResendAPIKey == "" {
		return nil, errors.New("RESEND_API_KEY is empty")
	}

	return cfg, nil
}
