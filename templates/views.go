// Package templates holds the site's templ components and the view models
// they render.
package templates

import (
	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/i18n"
)

type Restaurant struct {
	Name    string
	Address string
}

type FieldView struct {
	Name     string
	Label    string
	Value    string
	Error    string
	Required bool
}

func inputClass(f FieldView) string {
	if f.Error != "" {
		return "form-input error"
	}
	return "form-input"
}

func ariaInvalid(f FieldView) string {
	if f.Error != "" {
		return "true"
	}
	return "false"
}

type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

type FormView struct {
	Lang        string
	Title       string
	SubmitLabel string

	SuccessLabel string
	SuccessText  string
	ErrorLabel   string
	ErrorBanner  string

	Date            FieldView
	Time            FieldView
	Guests          FieldView
	Occasion        FieldView
	Name            FieldView
	Email           FieldView
	Phone           FieldView
	SpecialRequests FieldView

	TimePlaceholder string
	TimeOptions     []OptionView
	TimeEnabled     bool
	OccasionOptions []OptionView
	MinDate         string
	MinGuests       int
	MaxGuests       int

	Touched       []string
	SubmitEnabled bool
}

// NewFormView translates a form state into what the template displays.
// minDate is today's date in booking.DateLayout.
func NewFormView(lang i18n.Language, s booking.State, minDate string) FormView {
	field := func(f booking.Field, label string, required bool) FieldView {
		msg := s.ErrorFor(f)
		if msg != "" {
			msg = i18n.T(lang, msg)
		}
		return FieldView{
			Name:     string(f),
			Label:    i18n.T(lang, label),
			Value:    s.Draft.Value(f),
			Error:    msg,
			Required: required,
		}
	}

	view := FormView{
		Lang:            string(lang),
		Title:           i18n.T(lang, "Reserve a Table"),
		SubmitLabel:     i18n.T(lang, "Make Your Reservation"),
		ErrorLabel:      i18n.T(lang, "Error:"),
		Date:            field(booking.FieldDate, "Date", true),
		Time:            field(booking.FieldTime, "Time", true),
		Guests:          field(booking.FieldGuests, "Number of Guests", true),
		Occasion:        field(booking.FieldOccasion, "Occasion", false),
		Name:            field(booking.FieldName, "Full Name", true),
		Email:           field(booking.FieldEmail, "Email", true),
		Phone:           field(booking.FieldPhone, "Phone", true),
		SpecialRequests: field(booking.FieldSpecialRequests, "Special Requests", false),
		TimePlaceholder: i18n.T(lang, "Select a time"),
		TimeEnabled:     s.TimeEnabled(),
		MinDate:         minDate,
		MinGuests:       booking.MinGuests,
		MaxGuests:       booking.MaxGuests,
		SubmitEnabled:   !s.Submitting && s.CanSubmit(),
	}

	if s.Submitting {
		view.SubmitLabel = i18n.T(lang, "Submitting...")
	}

	switch s.Outcome.Status {
	case booking.Succeeded:
		view.SuccessLabel = i18n.T(lang, "Success!")
		view.SuccessText = i18n.T(lang, "Your reservation has been confirmed.") + " " +
			i18n.T(lang, "We've sent a confirmation email to") + " " + s.Outcome.Email + "."
	case booking.Failed:
		view.ErrorBanner = i18n.T(lang, s.Outcome.Reason)
	}

	for _, slot := range s.Slots {
		view.TimeOptions = append(view.TimeOptions, OptionView{
			Value:    slot,
			Label:    slot,
			Selected: slot == s.Draft.Time,
		})
	}

	for _, o := range booking.Occasions {
		label := i18n.Title(lang, string(o))
		if lang != i18n.English {
			label = i18n.T(lang, string(o))
		}
		view.OccasionOptions = append(view.OccasionOptions, OptionView{
			Value:    string(o),
			Label:    label,
			Selected: o == s.Draft.Occasion,
		})
	}

	for _, f := range s.Touched.Fields() {
		view.Touched = append(view.Touched, string(f))
	}

	return view
}
