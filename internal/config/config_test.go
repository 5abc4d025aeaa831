package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " chef@littlelemon.com, host@littlelemon.com ")
	t.Setenv("RESTAURANT_TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.SubmitDelay != time.Second {
		t.Errorf("Expected 1s submit delay, got %v", cfg.SubmitDelay)
	}
	if cfg.SubmitFailureRate != 0.05 {
		t.Errorf("Expected 0.05 failure rate, got %v", cfg.SubmitFailureRate)
	}
	if cfg.PhoneRegion != "US" {
		t.Errorf("Expected US phone region, got %q", cfg.PhoneRegion)
	}
	if len(cfg.AdminEmails) != 2 || cfg.AdminEmails[0] != "chef@littlelemon.com" || cfg.AdminEmails[1] != "host@littlelemon.com" {
		t.Errorf("Unexpected admin emails %q", cfg.AdminEmails)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Expected UTC location, got %v", cfg.Location)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "malformed delay", key: "SUBMIT_DELAY", value: "soon"},
		{name: "negative delay", key: "SUBMIT_DELAY", value: "-1s"},
		{name: "malformed rate", key: "SUBMIT_FAILURE_RATE", value: "often"},
		{name: "rate above one", key: "SUBMIT_FAILURE_RATE", value: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
