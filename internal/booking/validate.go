package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Validation messages, also used as i18n catalog keys
const (
	MsgDateRequired     = "Date is required"
	MsgDateInvalid      = "Invalid date format"
	MsgDateInPast       = "Date cannot be in the past"
	MsgTimeRequired     = "Time is required"
	MsgTimeUnavailable  = "Selected time is not available"
	MsgGuestsRequired   = "Number of guests is required"
	MsgGuestsMin        = "At least 1 guest is required"
	MsgGuestsMax        = "Maximum 10 guests allowed"
	MsgNameRequired     = "Name is required"
	MsgNameTooShort     = "Name must be at least 2 characters"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Invalid email format"
	MsgPhoneRequired    = "Phone number is required"
	MsgPhoneInvalid     = "Invalid phone number format"
	MsgPhoneTooShort    = "Phone number must be at least 10 digits"
	MsgFixErrors        = "Please fix all errors before submitting"
	MsgBookingFailed    = "Booking failed. Please try again or contact us directly."
	MsgUnexpectedError  = "An unexpected error occurred. Please try again later."
	MsgTimesUnavailable = "Failed to load available times. Please try again."
)

const (
	MinGuests      = 1
	MaxGuests      = 10
	minNameLength  = 2
	minPhoneDigits = 10
)

// space is the whitespace class browsers apply in form patterns
const space = `\s\x0B\p{Z}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phonePattern = regexp.MustCompile(`^[\d` + space + `\-+()]+$`)
)

// ValidateField returns the error message for a field value, or "" when valid.
// today decides which dates are in the past; only its calendar day in its
// own location matters.
func ValidateField(f Field, value string, today time.Time) string {
	switch f {
	case FieldDate:
		return validateDate(value, today)
	case FieldTime:
		if value == "" {
			return MsgTimeRequired
		}
	case FieldGuests:
		return validateGuests(value)
	case FieldName:
		name := strings.TrimSpace(value)
		if name == "" {
			return MsgNameRequired
		}
		// Length counts UTF-16 code units, as the browser form does
		if len(utf16.Encode([]rune(name))) < minNameLength {
			return MsgNameTooShort
		}
	case FieldEmail:
		if value == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(value) {
			return MsgEmailInvalid
		}
	case FieldPhone:
		if value == "" {
			return MsgPhoneRequired
		}
		if !phonePattern.MatchString(value) {
			return MsgPhoneInvalid
		}
		if countDigits(value) < minPhoneDigits {
			return MsgPhoneTooShort
		}
	}
	return ""
}

func validateDate(value string, today time.Time) string {
	if value == "" {
		return MsgDateRequired
	}
	date, err := ParseDate(value, today.Location())
	if err != nil {
		return MsgDateInvalid
	}
	y, m, d := today.Date()
	if date.Before(time.Date(y, m, d, 0, 0, 0, 0, today.Location())) {
		return MsgDateInPast
	}
	return ""
}

func validateGuests(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return MsgGuestsRequired
	}
	guests, err := strconv.Atoi(value)
	if err != nil || guests < MinGuests {
		return MsgGuestsMin
	}
	if guests > MaxGuests {
		return MsgGuestsMax
	}
	return ""
}

func countDigits(value string) int {
	n := 0
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			n++
		}
	}
	return n
}

// ValidateDraft runs the rules for every required field
func ValidateDraft(d Draft, today time.Time) FieldErrors {
	errs := FieldErrors{}
	for _, f := range RequiredFields {
		if msg := ValidateField(f, d.Value(f), today); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}
