package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Database
	DatabaseURL string

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	AdminEmails        []string

	// Session
	SessionSecret string

	// Restaurant Details
	RestaurantName    string
	RestaurantAddress string
	Location          *time.Location
	PhoneRegion       string

	// Simulated reservation backend
	SubmitDelay       time.Duration
	SubmitFailureRate float64

	// App
	BaseURL string
	Port    string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "sqlite3://little-lemon.db"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		RestaurantName:     getEnv("RESTAURANT_NAME", "Little Lemon"),
		RestaurantAddress:  getEnv("RESTAURANT_ADDRESS", "Chicago, Illinois"),
		PhoneRegion:        strings.ToUpper(getEnv("PHONE_REGION", "US")),
	}

	// Parse admin emails
	adminEmailsStr := getEnv("ADMIN_EMAILS", "")
	if adminEmailsStr != "" {
		cfg.AdminEmails = strings.Split(adminEmailsStr, ",")
		for i := range cfg.AdminEmails {
			cfg.AdminEmails[i] = strings.TrimSpace(cfg.AdminEmails[i])
		}
	}

	// Restaurant timezone decides what "today" means for the booking form
	tz := getEnv("RESTAURANT_TIMEZONE", "America/Chicago")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: unknown RESTAURANT_TIMEZONE %q, using local time: %v", tz, err)
		loc = time.Local
	}
	cfg.Location = loc

	delay, err := time.ParseDuration(getEnv("SUBMIT_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMIT_DELAY format: %w", err)
	}
	if delay < 0 {
		return nil, fmt.Errorf("invalid SUBMIT_DELAY: must not be negative")
	}
	cfg.SubmitDelay = delay

	rate, err := strconv.ParseFloat(getEnv("SUBMIT_FAILURE_RATE", "0.05"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMIT_FAILURE_RATE format: %w", err)
	}
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("invalid SUBMIT_FAILURE_RATE: must be between 0 and 1")
	}
	cfg.SubmitFailureRate = rate

	return cfg, nil
}

// Now returns the current time in the restaurant's timezone
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
