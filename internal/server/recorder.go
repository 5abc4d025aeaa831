package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/utils"
)

// reservationRecorder stores drafts accepted by the reservation backend
type reservationRecorder struct {
	db     *database.DB
	config *config.Config
}

// newReservation converts a validated draft into its stored form
func newReservation(draft booking.Draft, cfg *config.Config) (*database.Reservation, error) {
	date, err := booking.ParseDate(draft.Date, cfg.Location)
	if err != nil {
		return nil, err
	}
	guests, err := strconv.Atoi(strings.TrimSpace(draft.Guests))
	if err != nil {
		return nil, fmt.Errorf("invalid guest count %q: %w", draft.Guests, err)
	}

	requests := strings.TrimSpace(draft.SpecialRequests)
	return &database.Reservation{
		Date:            date,
		Time:            draft.Time,
		Guests:          guests,
		Occasion:        string(draft.Occasion),
		Name:            strings.TrimSpace(draft.Name),
		Email:           strings.TrimSpace(draft.Email),
		Phone:           utils.NormalizeOrKeep(draft.Phone, cfg.PhoneRegion),
		SpecialRequests: sql.NullString{String: requests, Valid: requests != ""},
	}, nil
}

func (rec *reservationRecorder) RecordReservation(ctx context.Context, draft booking.Draft) (string, error) {
	res, err := newReservation(draft, rec.config)
	if err != nil {
		return "", err
	}

	saved, err := rec.db.CreateReservation(ctx, res)
	if err != nil {
		return "", err
	}

	log.Printf("Reservation %s recorded for %s on %s at %s (%d guests)",
		saved.Code, saved.Email, saved.Date.Format(booking.DateLayout), saved.Time, saved.Guests)
	return saved.Code, nil
}
