package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexTLDR/little-lemon/internal/availability"
	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/database"
)

type availabilityResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type reservationRequest struct {
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Guests          json.Number `json:"guests"`
	Occasion        string      `json:"occasion"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	SpecialRequests string      `json:"specialRequests"`
}

func (req reservationRequest) draft() booking.Draft {
	return booking.Draft{
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests.String(),
		Occasion:        booking.ParseOccasion(req.Occasion),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	}
}

type reservationResponse struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message,omitempty"`
	Email   string                   `json:"email,omitempty"`
	Code    string                   `json:"code,omitempty"`
	Errors  map[booking.Field]string `json:"errors,omitempty"`
}

type reservationDetails struct {
	Code            string `json:"code"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Occasion        string `json:"occasion"`
	Name            string `json:"name"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to write JSON response: %v", err)
	}
}

// HandleAvailability returns the bookable times for ?date=YYYY-MM-DD
func HandleAvailability(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		value := r.URL.Query().Get("date")
		date, err := booking.ParseDate(value, s.GetConfig().Location)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be in YYYY-MM-DD format"})
			return
		}

		times, err := availability.Fetch(date)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: booking.MsgTimesUnavailable})
			return
		}
		if times == nil {
			times = []string{}
		}

		writeJSON(w, http.StatusOK, availabilityResponse{Date: date.Format(booking.DateLayout), Times: times})
	}
}

// HandleAPIReservation validates and submits a JSON reservation
func HandleAPIReservation(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		var req reservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		c := restoreController(s, req.draft(), nil)
		outcome := c.Submit(r.Context())

		resp := reservationResponse{
			Status:  outcome.Status.String(),
			Message: outcome.Reason,
			Email:   outcome.Email,
			Code:    outcome.Code,
		}

		status := http.StatusCreated
		switch outcome.Reason {
		case "":
		case booking.MsgFixErrors:
			status = http.StatusUnprocessableEntity
			resp.Errors = c.State().Errors
		case booking.MsgBookingFailed:
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}

		writeJSON(w, status, resp)
	}
}

// HandleAPIReservationLookup returns the reservation stored under the
// confirmation code in the path
func HandleAPIReservationLookup(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := s.GetDB()
		if db == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "reservations are not stored"})
			return
		}

		res, err := db.GetReservationByCode(r.Context(), r.PathValue("code"))
		if errors.Is(err, database.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "reservation not found"})
			return
		}
		if err != nil {
			log.Printf("Failed to look up reservation: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load reservation"})
			return
		}

		writeJSON(w, http.StatusOK, reservationDetails{
			Code:            res.Code,
			Date:            res.Date.Format(booking.DateLayout),
			Time:            res.Time,
			Guests:          res.Guests,
			Occasion:        res.Occasion,
			Name:            res.Name,
			SpecialRequests: res.SpecialRequests.String,
		})
	}
}
