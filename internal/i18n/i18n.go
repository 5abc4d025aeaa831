package i18n

import (
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Language string

const (
	English  Language = "en"
	Romanian Language = "ro"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Romanian})

// GetLanguageFromRequest extracts language from request (query param, cookie
// or Accept-Language header)
func GetLanguageFromRequest(r *http.Request) Language {
	// Check query parameter first
	if lang, ok := parse(r.URL.Query().Get("lang")); ok {
		return lang
	}

	// Check cookie
	if cookie, err := r.Cookie("lang"); err == nil {
		if lang, ok := parse(cookie.Value); ok {
			return lang
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil && len(tags) > 0 {
			_, index, confidence := matcher.Match(tags...)
			if confidence != language.No && index == 1 {
				return Romanian
			}
		}
	}

	// Default to English
	return English
}

func parse(value string) (Language, bool) {
	switch value {
	case "en":
		return English, true
	case "ro":
		return Romanian, true
	}
	return "", false
}

func (l Language) tag() language.Tag {
	if l == Romanian {
		return language.Romanian
	}
	return language.English
}

// T translates an English message. Unknown messages are returned as-is.
func T(lang Language, msg string) string {
	if lang == Romanian {
		if translated, ok := romanian[msg]; ok {
			return translated
		}
	}
	return msg
}

// Title capitalises a word using the rules of lang
func Title(lang Language, word string) string {
	return cases.Title(lang.tag()).String(word)
}

var romanian = map[string]string{
	"Reserve a Table":       "Rezervă o masă",
	"Make Your Reservation": "Fă rezervarea",
	"Submitting...":         "Se trimite...",
	"Date":                  "Data",
	"Time":                  "Ora",
	"Select a time":         "Alege o oră",
	"Number of Guests":      "Număr de persoane",
	"Occasion":              "Ocazie",
	"Full Name":             "Nume complet",
	"Email":                 "Email",
	"Phone":                 "Telefon",
	"Special Requests":      "Cerințe speciale",
	"Success!":              "Succes!",
	"Error:":                "Eroare:",

	"Your reservation has been confirmed.": "Rezervarea ta a fost confirmată.",
	"We've sent a confirmation email to":   "Am trimis un email de confirmare la",

	"birthday":    "Zi de naștere",
	"anniversary": "Aniversare",
	"engagement":  "Logodnă",
	"business":    "Afaceri",
	"other":       "Altceva",

	"Date is required":                        "Data este obligatorie",
	"Invalid date format":                     "Format de dată invalid",
	"Date cannot be in the past":              "Data nu poate fi în trecut",
	"Time is required":                        "Ora este obligatorie",
	"Selected time is not available":          "Ora aleasă nu mai este disponibilă",
	"Number of guests is required":            "Numărul de persoane este obligatoriu",
	"At least 1 guest is required":            "Este necesară cel puțin o persoană",
	"Maximum 10 guests allowed":               "Sunt permise maximum 10 persoane",
	"Name is required":                        "Numele este obligatoriu",
	"Name must be at least 2 characters":      "Numele trebuie să aibă cel puțin 2 caractere",
	"Email is required":                       "Emailul este obligatoriu",
	"Invalid email format":                    "Format de email invalid",
	"Phone number is required":                "Numărul de telefon este obligatoriu",
	"Invalid phone number format":             "Număr de telefon invalid",
	"Phone number must be at least 10 digits": "Numărul de telefon trebuie să aibă cel puțin 10 cifre",
	"Please fix all errors before submitting": "Te rugăm să corectezi erorile înainte de trimitere",

	"Booking failed. Please try again or contact us directly.": "Rezervarea a eșuat. Încearcă din nou sau contactează-ne direct.",
	"An unexpected error occurred. Please try again later.":    "A apărut o eroare neașteptată. Încearcă mai târziu.",
	"Failed to load available times. Please try again.":        "Orele disponibile nu au putut fi încărcate. Încearcă din nou.",
}
