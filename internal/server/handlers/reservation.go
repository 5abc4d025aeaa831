package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/i18n"
	"github.com/AlexTLDR/little-lemon/templates"
)

// parseDraftForm reads the reservation fields and the touched set from a
// posted form
func parseDraftForm(r *http.Request) (booking.Draft, []booking.Field) {
	draft := booking.Draft{
		Date:            strings.TrimSpace(r.FormValue("date")),
		Time:            r.FormValue("time"),
		Guests:          r.FormValue("guests"),
		Occasion:        booking.ParseOccasion(r.FormValue("occasion")),
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		SpecialRequests: r.FormValue("specialRequests"),
	}

	var touched []booking.Field
	for _, name := range r.Form["touched"] {
		if f, ok := booking.ParseField(name); ok {
			touched = append(touched, f)
		}
	}

	return draft, touched
}

// formLanguage prefers the language the form was rendered in
func formLanguage(r *http.Request) i18n.Language {
	switch r.FormValue("lang") {
	case string(i18n.Romanian):
		return i18n.Romanian
	case string(i18n.English):
		return i18n.English
	}
	return i18n.GetLanguageFromRequest(r)
}

func restoreController(s Server, draft booking.Draft, touched []booking.Field) *booking.Controller {
	return booking.Restore(draft, touched, s.GetSubmitter(), booking.WithClock(s.GetConfig().Now))
}

// HandleReservationEvent applies a change or blur event and returns the
// re-rendered form
func HandleReservationEvent(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		field, ok := booking.ParseField(r.FormValue("field"))
		if !ok {
			http.Error(w, "Unknown field", http.StatusBadRequest)
			return
		}

		draft, touched := parseDraftForm(r)
		c := restoreController(s, draft, touched)

		value := draft.Value(field)
		switch r.FormValue("event") {
		case "change":
			c.Change(field, value)
		case "blur":
			c.Blur(field, value)
		default:
			http.Error(w, "Unknown event", http.StatusBadRequest)
			return
		}

		cfg := s.GetConfig()
		view := templates.NewFormView(formLanguage(r), c.State(), cfg.Now().Format(booking.DateLayout))
		if err := templates.ReservationForm(view).Render(r.Context(), w); err != nil {
			http.Error(w, "Failed to render form", http.StatusInternalServerError)
		}
	}
}

// HandleReservationSubmit validates and submits the reservation form
func HandleReservationSubmit(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		lang := formLanguage(r)
		draft, touched := parseDraftForm(r)
		c := restoreController(s, draft, touched)

		outcome := c.Submit(r.Context())
		if outcome.Status == booking.Succeeded {
			if err := pushConfirmation(s, w, r, outcome.Email); err != nil {
				log.Printf("Warning: failed to save confirmation flash: %v", err)
			}
			http.Redirect(w, r, "/?submitted=true&lang="+string(lang)+"#reservations", http.StatusSeeOther)
			return
		}

		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := renderHome(s, w, r, lang, c.State()); err != nil {
			log.Printf("Failed to render page: %v", err)
		}
	}
}
