package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhoneNumber normalizes a phone number to E.164 format.
// region is the ISO country code assumed when the number has no country code.
func NormalizePhoneNumber(phone, region string) (string, error) {
	phone = strings.TrimSpace(phone)

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", err
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", phonenumbers.ErrNotANumber
	}

	// Format to E.164 (e.g., +16502530000)
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NormalizeOrKeep returns the E.164 form of phone when it can be
// normalized and the trimmed input otherwise
func NormalizeOrKeep(phone, region string) string {
	if normalized, err := NormalizePhoneNumber(phone, region); err == nil {
		return normalized
	}
	return strings.TrimSpace(phone)
}
