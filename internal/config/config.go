package config

import (
	"fmt"
	"os"
)

// StateBackend selects where the state document lives.
const (
	StateBackendSQLite = "sqlite"
	StateBackendFile   = "file"
)

type Config struct {
	RosterPath       string
	DatabasePath     string
	StateBackend     string
	StatePath        string
	BaseURL          string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	LogLevel         string
	Port             string
}

func Load() (Config, error) {
	config := Config{
		RosterPath:       envOrDefault("ROSTER_PATH", "./data/roster.yaml"),
		DatabasePath:     envOrDefault("DATABASE_PATH", "./data/chore-bot.db"),
		StateBackend:     envOrDefault("STATE_BACKEND", StateBackendSQLite),
		StatePath:        envOrDefault("STATE_PATH", "./data/state.json"),
		BaseURL:          envOrDefault("BASE_URL", "http://localhost:8080"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		Port:             envOrDefault("PORT", "8080"),
	}

	if config.StateBackend != StateBackendSQLite && config.StateBackend != StateBackendFile {
		return Config{}, fmt.Errorf("STATE_BACKEND must be %q or %q, got %q",
			StateBackendSQLite, StateBackendFile, config.StateBackend)
	}

	return config, nil
}

// RequireTwilio checks that all Twilio credentials are present. Called by
// the entry points that send SMS; the web server does not need them.
func (config Config) RequireTwilio() error {
	if config.TwilioAccountSID == "" || config.TwilioAuthToken == "" || config.TwilioFromNumber == "" {
		return fmt.Errorf("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, and TWILIO_FROM_NUMBER are required")
	}
	return nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
