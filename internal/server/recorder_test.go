package server

import (
	"testing"
	"time"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/config"
)

func TestNewReservation(t *testing.T) {
	cfg := &config.Config{Location: time.UTC, PhoneRegion: "US"}
	draft := booking.Draft{
		Date:            "2026-10-15",
		Time:            "20:30",
		Guests:          " 4 ",
		Occasion:        booking.OccasionAnniversary,
		Name:            " John Doe ",
		Email:           "john@example.com",
		Phone:           "(650) 253-0000",
		SpecialRequests: "  ",
	}

	res, err := newReservation(draft, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !res.Date.Equal(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected date %v", res.Date)
	}
	if res.Guests != 4 {
		t.Errorf("Expected 4 guests, got %d", res.Guests)
	}
	if res.Name != "John Doe" {
		t.Errorf("Expected trimmed name, got %q", res.Name)
	}
	if res.Phone != "+16502530000" {
		t.Errorf("Expected E.164 phone, got %q", res.Phone)
	}
	if res.Occasion != "anniversary" {
		t.Errorf("Unexpected occasion %q", res.Occasion)
	}
	if res.SpecialRequests.Valid {
		t.Errorf("Blank special requests should be stored as NULL")
	}

	draft.Guests = "many"
	if _, err := newReservation(draft, cfg); err == nil {
		t.Errorf("Expected error for non-numeric guests")
	}
}
