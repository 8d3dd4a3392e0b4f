package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const offerDeadlineLayout = "2006-01-02T15:04:05"

// Config holds all application configuration values
type Config struct {
	Port              string
	GinMode           string
	LogLevel          string
	Locale            string
	WebhookURL        string
	ModalDismissDelay time.Duration
	AllowedOrigins    []string
	OfferDeadline     string
	OfferTimezone     string
	TwilioAccountSID  string
	TwilioAuthToken   string
	WhatsAppFrom      string
	WhatsAppTo        string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Locale:            getEnv("LOCALE", "ar"),
		WebhookURL:        strings.TrimSpace(os.Getenv("WEBHOOK_URL")),
		ModalDismissDelay: getEnvAsDuration("MODAL_DISMISS_DELAY", 5*time.Second),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		OfferDeadline:     getEnv("OFFER_DEADLINE", "2025-11-15T23:59:59"),
		OfferTimezone:     getEnv("OFFER_TIMEZONE", "Africa/Cairo"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		WhatsAppFrom:      os.Getenv("WHATSAPP_FROM"),
		WhatsAppTo:        os.Getenv("WHATSAPP_TO"),
	}
}

// WhatsAppEnabled reports whether lead summaries can be delivered through Twilio
func (c *Config) WhatsAppEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.WhatsAppFrom != "" && c.WhatsAppTo != ""
}

// OfferDeadlineTime parses OfferDeadline as wall-clock time in OfferTimezone
func (c *Config) OfferDeadlineTime() (time.Time, error) {
	loc, err := time.LoadLocation(c.OfferTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid OFFER_TIMEZONE: %w", err)
	}
	deadline, err := time.ParseInLocation(offerDeadlineLayout, c.OfferDeadline, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid OFFER_DEADLINE: %w", err)
	}
	return deadline, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
