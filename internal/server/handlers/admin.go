package handlers

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"

	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/templates"
)

// AdminServer extends Server with admin-specific methods
type AdminServer interface {
	Server
	GetCurrentUser(r *http.Request) (string, string)
}

// parseID parses an ID string and returns an error if invalid
func parseID(idStr string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(idStr, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid ID format: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid ID: must be positive")
	}
	return id, nil
}

// parseFormID parses and validates an ID from a POST form
// Returns the ID and true if successful, or writes an error response and returns false
func parseFormID(r *http.Request, w http.ResponseWriter) (int64, bool) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/admin/reservations", http.StatusSeeOther)
		return 0, false
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return 0, false
	}

	id, err := parseID(r.FormValue("id"))
	if err != nil {
		http.Error(w, "Invalid reservation ID", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// HandleAdminDashboard renders the admin dashboard
func HandleAdminDashboard(s AdminServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, name := s.GetCurrentUser(r)

		reservations, err := s.GetDB().GetAllReservations(r.Context())
		if err != nil {
			http.Error(w, "Failed to load reservations", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, `
			<!DOCTYPE html>
			<html>
			<head>
				<title>Admin Dashboard</title>
			</head>
			<body>
				<h1>Admin Dashboard</h1>
				<p>Welcome, %s (%s)</p>
				<p>%d reservations recorded</p>
				<nav>
					<a href="/admin/reservations">Reservations</a> |
					<a href="/auth/logout">Logout</a>
				</nav>
			</body>
			</html>
		`, html.EscapeString(name), html.EscapeString(email), len(reservations))
	}
}

// HandleAdminReservations lists all reservations
func HandleAdminReservations(s AdminServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, userName := s.GetCurrentUser(r)

		reservations, err := s.GetDB().GetAllReservations(r.Context())
		if err != nil {
			http.Error(w, "Failed to load reservations", http.StatusInternalServerError)
			return
		}

		themes := config.GetThemes()
		if err := templates.AdminReservationsList(userName, reservations, themes.Light, themes.Dark).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

// HandleAdminDeleteReservation deletes a reservation
func HandleAdminDeleteReservation(s AdminServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseFormID(r, w)
		if !ok {
			return
		}

		if err := s.GetDB().DeleteReservation(r.Context(), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				http.Error(w, "Reservation not found", http.StatusNotFound)
				return
			}
			log.Printf("Failed to delete reservation %d: %v", id, err)
			http.Error(w, "Failed to delete reservation", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin/reservations", http.StatusSeeOther)
	}
}
