package booking

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of the date field
const DateLayout = "2006-01-02"

// Field names a reservation form input
type Field string

const (
	FieldDate            Field = "date"
	FieldTime            Field = "time"
	FieldGuests          Field = "guests"
	FieldOccasion        Field = "occasion"
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldSpecialRequests Field = "specialRequests"
)

// RequiredFields are validated on submit and gate CanSubmit
var RequiredFields = []Field{FieldDate, FieldTime, FieldGuests, FieldName, FieldEmail, FieldPhone}

// AllFields lists every form input in display order
var AllFields = []Field{
	FieldDate, FieldTime, FieldGuests, FieldOccasion,
	FieldName, FieldEmail, FieldPhone, FieldSpecialRequests,
}

// ParseField maps a form input name to a Field
func ParseField(name string) (Field, bool) {
	for _, f := range AllFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Occasion is the optional reason for the visit
type Occasion string

const (
	OccasionBirthday    Occasion = "birthday"
	OccasionAnniversary Occasion = "anniversary"
	OccasionEngagement  Occasion = "engagement"
	OccasionBusiness    Occasion = "business"
	OccasionOther       Occasion = "other"

	DefaultOccasion = OccasionBirthday
)

var Occasions = []Occasion{
	OccasionBirthday, OccasionAnniversary, OccasionEngagement, OccasionBusiness, OccasionOther,
}

// ParseOccasion returns DefaultOccasion for unknown values
func ParseOccasion(value string) Occasion {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, o := range Occasions {
		if string(o) == value {
			return o
		}
	}
	return DefaultOccasion
}

// Draft holds the raw, not yet submitted form values
type Draft struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Guests          string   `json:"guests"`
	Occasion        Occasion `json:"occasion"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	SpecialRequests string   `json:"specialRequests"`
}

// NewDraft returns the empty form as shown on first render
func NewDraft() Draft {
	return Draft{
		Guests:   "1",
		Occasion: DefaultOccasion,
	}
}

// Value returns the raw value of a field
func (d Draft) Value(f Field) string {
	switch f {
	case FieldDate:
		return d.Date
	case FieldTime:
		return d.Time
	case FieldGuests:
		return d.Guests
	case FieldOccasion:
		return string(d.Occasion)
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldSpecialRequests:
		return d.SpecialRequests
	}
	return ""
}

// With returns a copy of the draft with one field replaced
func (d Draft) With(f Field, value string) Draft {
	switch f {
	case FieldDate:
		d.Date = value
	case FieldTime:
		d.Time = value
	case FieldGuests:
		d.Guests = value
	case FieldOccasion:
		d.Occasion = ParseOccasion(value)
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldSpecialRequests:
		d.SpecialRequests = value
	}
	return d
}

// ParseDate parses a date field value as midnight in loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}
