package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the binaries read from the environment.
// A .env file is honoured when present (local development); real
// environments set the variables directly.
type Config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
	LogLevel    string

	// Outbound notification providers.
	SMTPHost  string
	SMTPPort  string
	EmailFrom string
	SMSURL    string // empty disables SMS
	SMSToken  string

	NotifyTimeout time.Duration

	// ReminderLead/ReminderWindow define the [now+lead, now+lead+window)
	// selection interval for the reminder dispatcher.
	ReminderLead   time.Duration
	ReminderWindow time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "belleza.db"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "1025"),
		EmailFrom:      getEnv("EMAIL_FROM", "no-reply@belleza.local"),
		SMSURL:         os.Getenv("SMS_WEBHOOK_URL"),
		SMSToken:       os.Getenv("SMS_WEBHOOK_TOKEN"),
		NotifyTimeout:  getDuration("NOTIFY_TIMEOUT_SECONDS", time.Second, 10*time.Second),
		ReminderLead:   getDuration("REMINDER_LEAD_MINUTES", time.Minute, 60*time.Minute),
		ReminderWindow: getDuration("REMINDER_WINDOW_MINUTES", time.Minute, 5*time.Minute),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, unit, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * unit
}
