package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/database"
)

var csvHeader = []string{"Date", "Time", "Guests", "Occasion", "Name", "Email", "Phone", "Special Requests", "Code", "Created"}

// formatReservationForCSV converts a reservation to a CSV record
func formatReservationForCSV(res *database.Reservation) []string {
	requests := "-"
	if res.SpecialRequests.Valid && res.SpecialRequests.String != "" {
		// Replace newlines with spaces for free-text fields
		requests = strings.ReplaceAll(res.SpecialRequests.String, "\n", " ")
	}

	return []string{
		res.Date.Format(booking.DateLayout),
		res.Time,
		strconv.Itoa(res.Guests),
		res.Occasion,
		res.Name,
		res.Email,
		res.Phone,
		requests,
		res.Code,
		res.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// writeCSVHeaders sets HTTP headers and writes the UTF-8 BOM
func writeCSVHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=reservations.csv")

	// Write UTF-8 BOM for Excel compatibility
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})
}

// HandleAdminDownloadCSV exports all reservations as CSV
func HandleAdminDownloadCSV(s AdminServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := s.GetDB().GetAllReservations(r.Context())
		if err != nil {
			http.Error(w, "Failed to load reservations", http.StatusInternalServerError)
			return
		}

		writeCSVHeaders(w)

		cw := csv.NewWriter(w)
		records := make([][]string, 0, len(reservations)+1)
		records = append(records, csvHeader)
		for _, res := range reservations {
			records = append(records, formatReservationForCSV(res))
		}
		if err := cw.WriteAll(records); err != nil {
			log.Printf("Failed to write CSV: %v", err)
		}
	}
}
