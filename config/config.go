package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port           string
	BackendBaseURL string
	RequestTimeout time.Duration
	AllowedOrigins []string

	// Daily summary notification (optional, requires Twilio settings).
	SummarySchedule string
	SummaryPhone    string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string
}

// Load reads configuration from the environment. godotenv is expected to
// have populated it from .env already (see main).
func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		BackendBaseURL: getenv("BACKEND_API_URL", "http://localhost:5000/api"),
		RequestTimeout: time.Duration(getenvInt("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		AllowedOrigins: strings.Split(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		SummarySchedule: getenv("DAILY_SUMMARY_CRON", "0 22 * * *"),
		SummaryPhone:    os.Getenv("DAILY_SUMMARY_PHONE"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}
}

// SummaryEnabled reports whether the daily summary notification has enough
// configuration to run.
func (c *Config) SummaryEnabled() bool {
	return c.TwilioAccountSID != "" &&
		c.TwilioAuthToken != "" &&
		c.SummaryPhone != "" &&
		(c.TwilioPhoneNumber != "" || c.TwilioWhatsAppNumber != "")
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
