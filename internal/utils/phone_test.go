package utils

import (
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		region      string
		expected    string
		shouldError bool
	}{
		{
			name:     "US number with country code",
			input:    "+16502530000",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "US number without country code",
			input:    "6502530000",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "US number with parentheses and dashes",
			input:    "(650) 253-0000",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "US number with leading/trailing spaces",
			input:    "  650 253 0000  ",
			region:   "US",
			expected: "+16502530000",
		},
		{
			name:     "Romanian mobile without country code",
			input:    "0721234567",
			region:   "RO",
			expected: "+40721234567",
		},
		{
			name:     "Romanian mobile with country code while assuming US",
			input:    "+40 721 234 567",
			region:   "US",
			expected: "+40721234567",
		},
		{
			name:     "German mobile with dashes",
			input:    "+49-170-1234567",
			region:   "US",
			expected: "+491701234567",
		},
		{
			name:        "Sequential digits are not a real US number",
			input:       "1234567890",
			region:      "US",
			shouldError: true,
		},
		{
			name:        "Too short",
			input:       "123",
			region:      "US",
			shouldError: true,
		},
		{
			name:        "Empty string",
			input:       "",
			region:      "US",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePhoneNumber(tt.input, tt.region)

			if tt.shouldError {
				if err == nil {
					t.Errorf("Expected error for input %q, but got none", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for input %q: %v", tt.input, err)
				}
				if result != tt.expected {
					t.Errorf("For input %q, expected %q but got %q", tt.input, tt.expected, result)
				}
			}
		})
	}
}

func TestNormalizeOrKeep(t *testing.T) {
	if got := NormalizeOrKeep(" (650) 253-0000 ", "US"); got != "+16502530000" {
		t.Errorf("Expected normalized number, got %q", got)
	}
	if got := NormalizeOrKeep(" 1234567890 ", "US"); got != "1234567890" {
		t.Errorf("Expected raw number to be kept, got %q", got)
	}
}
