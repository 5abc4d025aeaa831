package handlers

import (
	"log"
	"net/http"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/i18n"
	"github.com/AlexTLDR/little-lemon/templates"
	"github.com/gorilla/sessions"
)

const flashSession = "flash-session"

// Server interface defines the methods needed by handlers
type Server interface {
	GetDB() *database.DB
	GetConfig() *config.Config
	GetSessionStore() sessions.Store
	GetSubmitter() booking.Submitter
}

// languageFromRequest resolves the page language and remembers an explicit
// ?lang= choice in a cookie
func languageFromRequest(w http.ResponseWriter, r *http.Request) i18n.Language {
	lang := i18n.GetLanguageFromRequest(r)
	if r.URL.Query().Get("lang") != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     "lang",
			Value:    string(lang),
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return lang
}

// popConfirmation returns the email of a reservation confirmed on the
// previous request, if any
func popConfirmation(s Server, w http.ResponseWriter, r *http.Request) (string, bool) {
	session, err := s.GetSessionStore().Get(r, flashSession)
	if err != nil {
		// A stale or tampered cookie yields a fresh session; nothing to show
		return "", false
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return "", false
	}
	if err := session.Save(r, w); err != nil {
		log.Printf("Warning: failed to clear flash session: %v", err)
	}

	email, ok := flashes[0].(string)
	return email, ok
}

// pushConfirmation stores the confirmed email for the page after the redirect
func pushConfirmation(s Server, w http.ResponseWriter, r *http.Request, email string) error {
	session, _ := s.GetSessionStore().Get(r, flashSession)
	session.AddFlash(email)
	return session.Save(r, w)
}

// renderHome renders the full page around the given form state
func renderHome(s Server, w http.ResponseWriter, r *http.Request, lang i18n.Language, state booking.State) error {
	cfg := s.GetConfig()
	themes := config.GetThemes()
	restaurant := templates.Restaurant{Name: cfg.RestaurantName, Address: cfg.RestaurantAddress}
	form := templates.NewFormView(lang, state, cfg.Now().Format(booking.DateLayout))

	return templates.Home(string(lang), themes.Light, themes.Dark, restaurant, form).Render(r.Context(), w)
}

// HandleHome renders the home page
func HandleHome(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		lang := languageFromRequest(w, r)

		state := booking.NewState()
		if email, ok := popConfirmation(s, w, r); ok {
			state.Outcome = booking.Outcome{Status: booking.Succeeded, Email: email}
		}

		if err := renderHome(s, w, r, lang, state); err != nil {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}
