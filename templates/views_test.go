package templates

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/i18n"
)

func TestNewFormView(t *testing.T) {
	s := booking.NewState()
	s.Draft.Date = "2026-10-15"
	s.Draft.Time = "20:30"
	s.Draft.Email = "invalid-email"
	s.Slots = []string{"17:00", "20:30"}
	s.Touched = booking.TouchedSet{booking.FieldEmail: true}
	s.Errors = booking.FieldErrors{booking.FieldEmail: booking.MsgEmailInvalid, booking.FieldName: booking.MsgNameRequired}

	view := NewFormView(i18n.English, s, "2026-10-14")

	if view.Email.Error != booking.MsgEmailInvalid {
		t.Errorf("Expected touched field error, got %q", view.Email.Error)
	}
	if view.Name.Error != "" {
		t.Errorf("Expected untouched field error to be hidden, got %q", view.Name.Error)
	}
	if !view.TimeEnabled {
		t.Errorf("Expected time to be enabled with a date")
	}
	if len(view.TimeOptions) != 2 || !view.TimeOptions[1].Selected {
		t.Errorf("Expected 20:30 to be selected, got %+v", view.TimeOptions)
	}
	if view.SubmitEnabled {
		t.Errorf("Expected submit to be disabled")
	}
	if len(view.Touched) != 1 || view.Touched[0] != "email" {
		t.Errorf("Unexpected touched list %v", view.Touched)
	}
	if view.OccasionOptions[0].Label != "Birthday" || !view.OccasionOptions[0].Selected {
		t.Errorf("Expected Birthday to be the selected default, got %+v", view.OccasionOptions[0])
	}
}

func TestNewFormViewTranslatesBanner(t *testing.T) {
	s := booking.NewState()
	s.Outcome = booking.Outcome{Status: booking.Failed, Reason: booking.MsgFixErrors}

	view := NewFormView(i18n.Romanian, s, "2026-10-14")
	if view.ErrorBanner != i18n.T(i18n.Romanian, booking.MsgFixErrors) {
		t.Errorf("Expected translated banner, got %q", view.ErrorBanner)
	}
}

func TestReservationFormRender(t *testing.T) {
	view := NewFormView(i18n.English, booking.NewState(), "2026-10-14")

	var buf bytes.Buffer
	if err := ReservationForm(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{`id="reservation-form"`, `min="2026-10-14"`, `Make Your Reservation`, `Select a time`} {
		if !strings.Contains(html, want) {
			t.Errorf("Rendered form is missing %q", want)
		}
	}
	if !strings.Contains(html, `aria-invalid="false" disabled>`) {
		t.Errorf("Expected time select to be disabled without a date")
	}
}

func TestReservationFormRenderErrors(t *testing.T) {
	s := booking.NewState()
	s.Draft.Date = "2026-10-15"
	s.Draft.Time = "20:30"
	s.Draft.Name = "<b>Al</b>"
	s.Slots = []string{"17:00", "20:30"}
	s.Touched = booking.TouchedSet{booking.FieldEmail: true}
	s.Errors = booking.FieldErrors{booking.FieldEmail: booking.MsgEmailRequired}

	var buf bytes.Buffer
	if err := ReservationForm(NewFormView(i18n.English, s, "2026-10-14")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := buf.String()

	tests := []struct {
		name string
		want string
	}{
		{name: "email error", want: `<span id="email-error" class="error-text" role="alert">Email is required</span>`},
		{name: "email marked invalid", want: `class="form-input error" required aria-required="true" aria-invalid="true"`},
		{name: "selected slot", want: `<option value="20:30" selected>20:30</option>`},
		{name: "escaped value", want: `value="&lt;b&gt;Al&lt;/b&gt;"`},
		{name: "touched carried", want: `<input type="hidden" name="touched" value="email">`},
		{name: "guest minimum", want: ` min="1"`},
		{name: "guest maximum", want: ` max="10"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(html, tt.want) {
				t.Errorf("Rendered form is missing %q", tt.want)
			}
		})
	}
	if strings.Contains(html, `aria-invalid="false" disabled>`) {
		t.Errorf("Expected time select to be enabled with a date")
	}
}

func TestHomeRender(t *testing.T) {
	view := NewFormView(i18n.Romanian, booking.NewState(), "2026-10-14")
	restaurant := Restaurant{Name: "Little Lemon", Address: "Chicago, IL"}

	var buf bytes.Buffer
	if err := Home(string(i18n.Romanian), "lemonade", "dim", restaurant, view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`<html lang="ro" data-theme="lemonade" data-dark-theme="dim">`,
		`<title>Little Lemon</title>`,
		`Little Lemon &middot; Chicago, IL`,
		`id="reservation-form-container"`,
		i18n.T(i18n.Romanian, "Reserve a Table"),
		`fetch("/reservations/events"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Rendered page is missing %q", want)
		}
	}
}

func TestAdminReservationsListRender(t *testing.T) {
	reservations := []*database.Reservation{
		{
			ID:              7,
			Code:            "c0ffee",
			Date:            time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
			Time:            "20:30",
			Guests:          4,
			Occasion:        "anniversary",
			Name:            "John Doe",
			Email:           "john@example.com",
			Phone:           "+16502530000",
			SpecialRequests: sql.NullString{String: "Window seat", Valid: true},
		},
	}

	tests := []struct {
		name         string
		reservations []*database.Reservation
		want         []string
	}{
		{
			name:         "with reservations",
			reservations: reservations,
			want: []string{
				"Signed in as Chef",
				"<td>2026-10-15</td><td>20:30</td><td>4</td><td>anniversary</td>",
				"<td>Window seat</td><td><code>c0ffee</code></td>",
				`<input type="hidden" name="id" value="7">`,
			},
		},
		{
			name: "empty",
			want: []string{"Signed in as Chef", "No reservations yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := AdminReservationsList("Chef", tt.reservations, "lemonade", "dim").Render(context.Background(), &buf); err != nil {
				t.Fatalf("Failed to render: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Rendered list is missing %q", want)
				}
			}
		})
	}
}
