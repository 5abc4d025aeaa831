package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/AlexTLDR/little-lemon/internal/availability"
	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
)

func newTestServer(t *testing.T, accept bool) *Server {
	t.Helper()
	cfg := &config.Config{
		SessionSecret:  "test-session-secret-of-32-bytes!",
		Location:       time.UTC,
		PhoneRegion:    "US",
		RestaurantName: "Little Lemon",
		SubmitDelay:    time.Millisecond,
		AdminEmails:    []string{"chef@littlelemon.com"},
	}
	s := New(cfg, nil)
	s.submitter = booking.SubmitterFunc(func(ctx context.Context, d booking.Draft) (booking.Confirmation, error) {
		return booking.Confirmation{Accepted: accept}, nil
	})
	return s
}

// newStoredServer returns a server backed by a fresh SQLite database whose
// backend accepts every reservation
func newStoredServer(t *testing.T) *Server {
	t.Helper()
	db, err := database.New(context.Background(), "sqlite3://"+filepath.Join(t.TempDir(), "lemon.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	s := newTestServer(t, true)
	s.db = db
	s.submitter = &booking.SimulatedSubmitter{
		Delay:    time.Millisecond,
		Random:   func() float64 { return 1 },
		Recorder: &reservationRecorder{db: db, config: s.config},
	}
	return s
}

func adminCookies(t *testing.T, s *Server) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, _ := s.sessionStore.Get(req, authSession)
	session.Values["email"] = "chef@littlelemon.com"
	session.Values["name"] = "Chef"
	if err := session.Save(req, rec); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
	return rec.Result().Cookies()
}

func tomorrow() time.Time {
	return time.Now().In(time.UTC).AddDate(0, 0, 1)
}

func validForm() url.Values {
	date := tomorrow()
	return url.Values{
		"date":     {date.Format(booking.DateLayout)},
		"time":     {availability.GenerateSlots(date)[0]},
		"guests":   {"4"},
		"occasion": {"anniversary"},
		"name":     {"John Doe"},
		"email":    {"john@example.com"},
		"phone":    {"1234567890"},
	}
}

func postForm(s *Server, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func get(s *Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersEmptyForm(t *testing.T) {
	rec := get(newTestServer(t, true), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Reserve a Table", `name="date"`, `value="1"`, "Make Your Reservation"} {
		if !strings.Contains(body, want) {
			t.Errorf("Home page is missing %q", want)
		}
	}
	if !strings.Contains(body, `disabled aria-label="Submit reservation"`) {
		t.Errorf("Expected submit button to be disabled on first render")
	}
}

func TestStaticStylesheet(t *testing.T) {
	rec := get(newTestServer(t, true), "/static/css/output.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Expected a stylesheet, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), ".form-input") {
		t.Errorf("Expected form rules in the stylesheet")
	}
}

func TestHomeUnknownPath(t *testing.T) {
	if rec := get(newTestServer(t, true), "/menu"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestAvailabilityAPI(t *testing.T) {
	s := newTestServer(t, true)

	rec := get(s, "/api/availability?date=2026-10-15")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Date  string   `json:"date"`
		Times []string `json:"times"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	expected := []string{"17:00", "17:30", "20:30", "22:30"}
	if resp.Date != "2026-10-15" || !reflect.DeepEqual(resp.Times, expected) {
		t.Errorf("Expected %v on 2026-10-15, got %+v", expected, resp)
	}

	if rec := get(s, "/api/availability?date=tomorrow"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed date, got %d", rec.Code)
	}
}

func TestReservationEventBlur(t *testing.T) {
	form := url.Values{
		"event": {"blur"},
		"field": {"email"},
		"email": {"invalid-email"},
		"name":  {"A"},
	}
	rec := postForm(newTestServer(t, true), "/reservations/events", form)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, booking.MsgEmailInvalid) {
		t.Errorf("Expected %q in fragment", booking.MsgEmailInvalid)
	}
	if strings.Contains(body, booking.MsgNameTooShort) {
		t.Errorf("Untouched name field should not show an error")
	}
	if !strings.Contains(body, `name="touched" value="email"`) {
		t.Errorf("Expected email to be carried as touched")
	}
}

func TestReservationEventDateChangeLoadsTimes(t *testing.T) {
	date := tomorrow()
	form := url.Values{
		"event": {"change"},
		"field": {"date"},
		"date":  {date.Format(booking.DateLayout)},
	}
	rec := postForm(newTestServer(t, true), "/reservations/events", form)

	body := rec.Body.String()
	for _, slot := range availability.GenerateSlots(date) {
		if !strings.Contains(body, `<option value="`+slot+`"`) {
			t.Errorf("Expected slot %s in the time select", slot)
		}
	}
}

func TestReservationEventRejectsUnknownField(t *testing.T) {
	form := url.Values{"event": {"blur"}, "field": {"password"}}
	if rec := postForm(newTestServer(t, true), "/reservations/events", form); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestReservationSubmitSuccess(t *testing.T) {
	s := newTestServer(t, true)

	rec := postForm(s, "/reservations", validForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/?submitted=true") {
		t.Errorf("Unexpected redirect location %q", loc)
	}

	home := get(s, "/", rec.Result().Cookies()...)
	body := home.Body.String()
	if !strings.Contains(body, "Success!") || !strings.Contains(body, "confirmation email to john@example.com.") {
		t.Errorf("Expected confirmation banner with the email, got %s", body)
	}
	if strings.Contains(body, `value="John Doe"`) {
		t.Errorf("Expected the form to be reset after success")
	}
}

func TestReservationSubmitInvalid(t *testing.T) {
	form := validForm()
	form.Set("email", "invalid-email")

	rec := postForm(newTestServer(t, true), "/reservations", form)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, booking.MsgFixErrors) || !strings.Contains(body, booking.MsgEmailInvalid) {
		t.Errorf("Expected banner and email error in the page")
	}
}

func TestReservationSubmitRejected(t *testing.T) {
	rec := postForm(newTestServer(t, false), "/reservations", validForm())
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Booking failed.") {
		t.Errorf("Expected booking failure banner")
	}
	if !strings.Contains(body, `value="John Doe"`) {
		t.Errorf("Expected the draft to be kept after a failure")
	}
}

func TestAPIReservation(t *testing.T) {
	form := validForm()
	payload := map[string]any{
		"date":   form.Get("date"),
		"time":   form.Get("time"),
		"guests": 4,
		"name":   "John Doe",
		"email":  "john@example.com",
		"phone":  "1234567890",
	}

	tests := []struct {
		name   string
		accept bool
		change func(map[string]any)
		code   int
		status string
	}{
		{name: "accepted", accept: true, code: http.StatusCreated, status: "succeeded"},
		{name: "rejected", accept: false, code: http.StatusServiceUnavailable, status: "failed"},
		{
			name:   "too many guests",
			accept: true,
			change: func(p map[string]any) { p["guests"] = 15 },
			code:   http.StatusUnprocessableEntity,
			status: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := map[string]any{}
			for k, v := range payload {
				p[k] = v
			}
			if tt.change != nil {
				tt.change(p)
			}
			body, _ := json.Marshal(p)

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			newTestServer(t, tt.accept).Handler().ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Fatalf("Expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
			var resp struct {
				Status string            `json:"status"`
				Errors map[string]string `json:"errors"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Status != tt.status {
				t.Errorf("Expected status %q, got %q", tt.status, resp.Status)
			}
			if tt.code == http.StatusUnprocessableEntity && resp.Errors["guests"] != booking.MsgGuestsMax {
				t.Errorf("Expected guests error, got %v", resp.Errors)
			}
		})
	}
}

func postJSON(s *Server, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAPIReservationReturnsCode(t *testing.T) {
	s := newStoredServer(t)
	form := validForm()

	rec := postJSON(s, "/api/reservations", map[string]any{
		"date":            form.Get("date"),
		"time":            form.Get("time"),
		"guests":          4,
		"occasion":        "anniversary",
		"name":            "John Doe",
		"email":           "john@example.com",
		"phone":           "(650) 253-0000",
		"specialRequests": "Window seat",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Status string `json:"status"`
		Code   string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.Code == "" {
		t.Fatalf("Expected a confirmation code in %s", rec.Body.String())
	}

	lookup := get(s, "/api/reservations/"+created.Code)
	if lookup.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", lookup.Code, lookup.Body.String())
	}
	var details struct {
		Code            string `json:"code"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		Guests          int    `json:"guests"`
		Occasion        string `json:"occasion"`
		Name            string `json:"name"`
		SpecialRequests string `json:"specialRequests"`
	}
	if err := json.Unmarshal(lookup.Body.Bytes(), &details); err != nil {
		t.Fatalf("Failed to decode lookup: %v", err)
	}
	if details.Code != created.Code || details.Date != form.Get("date") || details.Time != form.Get("time") {
		t.Errorf("Lookup does not match the created reservation: %+v", details)
	}
	if details.Guests != 4 || details.Occasion != "anniversary" || details.SpecialRequests != "Window seat" {
		t.Errorf("Unexpected stored details: %+v", details)
	}
}

func TestAPIReservationLookup(t *testing.T) {
	tests := []struct {
		name   string
		server func(t *testing.T) *Server
		code   int
	}{
		{name: "unknown code", server: newStoredServer, code: http.StatusNotFound},
		{
			name:   "no database",
			server: func(t *testing.T) *Server { return newTestServer(t, true) },
			code:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(tt.server(t), "/api/reservations/missing"); rec.Code != tt.code {
				t.Errorf("Expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}

func TestAdminWithoutDatabase(t *testing.T) {
	s := newTestServer(t, true)
	cookies := adminCookies(t, s)

	for _, path := range []string{"/admin", "/admin/reservations", "/admin/reservations/download-csv"} {
		if rec := get(s, path, cookies...); rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
		}
	}
	if rec := postForm(s, "/admin/reservations/delete", url.Values{"id": {"1"}}, cookies...); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Delete: expected 503, got %d", rec.Code)
	}
}

func TestAdminReservationsList(t *testing.T) {
	s := newStoredServer(t)
	form := validForm()
	form.Set("phone", "(650) 253-0000")
	if rec := postForm(s, "/reservations", form); rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}

	rec := get(s, "/admin/reservations", adminCookies(t, s)...)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Signed in as Chef", "John Doe", "john@example.com", "+16502530000"} {
		if !strings.Contains(body, want) {
			t.Errorf("Reservation list is missing %q", want)
		}
	}
}

func TestAdminRequiresLogin(t *testing.T) {
	rec := get(newTestServer(t, true), "/admin/reservations")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/auth/google" {
		t.Errorf("Expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGoogleCallbackRejectsUnknownState(t *testing.T) {
	rec := get(newTestServer(t, true), "/auth/google/callback?state=forged&code=abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestIsAdminEmail(t *testing.T) {
	s := newTestServer(t, true)
	if !s.isAdminEmail("chef@littlelemon.com") {
		t.Errorf("Expected whitelisted email to be accepted")
	}
	if s.isAdminEmail("guest@example.com") {
		t.Errorf("Expected unknown email to be rejected")
	}
}
