package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/AlexTLDR/little-lemon/internal/booking"
	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/server/handlers"
	"github.com/AlexTLDR/little-lemon/static"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	config       *config.Config
	db           *database.DB
	sessionStore *sessions.CookieStore
	submitter    booking.Submitter
	router       *http.ServeMux
}

// GetDB implements handlers.Server interface
func (s *Server) GetDB() *database.DB {
	return s.db
}

// GetConfig implements handlers.Server interface
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// GetSessionStore implements handlers.Server interface
func (s *Server) GetSessionStore() sessions.Store {
	return s.sessionStore
}

// GetSubmitter implements handlers.Server interface
func (s *Server) GetSubmitter() booking.Submitter {
	return s.submitter
}

// GetCurrentUser implements handlers.AdminServer interface
func (s *Server) GetCurrentUser(r *http.Request) (string, string) {
	session, _ := s.sessionStore.Get(r, authSession)
	email, _ := session.Values["email"].(string)
	name, _ := session.Values["name"].(string)
	return email, name
}

// New builds the server. db may be nil, in which case accepted
// reservations are not recorded.
func New(cfg *config.Config, db *database.DB) *Server {
	var recorder booking.Recorder
	if db != nil {
		recorder = &reservationRecorder{db: db, config: cfg}
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	s := &Server{
		config:       cfg,
		db:           db,
		sessionStore: store,
		submitter:    booking.NewSimulatedSubmitter(cfg.SubmitDelay, cfg.SubmitFailureRate, recorder),
		router:       http.NewServeMux(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	fs := http.FileServerFS(static.FS)
	s.router.Handle("/static/", http.StripPrefix("/static/", fs))

	// Public routes
	s.router.HandleFunc("/", handlers.HandleHome(s))
	s.router.HandleFunc("/reservations", handlers.HandleReservationSubmit(s))
	s.router.HandleFunc("/reservations/events", handlers.HandleReservationEvent(s))

	// JSON API
	s.router.HandleFunc("/api/availability", handlers.HandleAvailability(s))
	s.router.HandleFunc("/api/reservations", handlers.HandleAPIReservation(s))
	s.router.HandleFunc("GET /api/reservations/{code}", handlers.HandleAPIReservationLookup(s))

	// Auth routes
	s.router.HandleFunc("/auth/google", s.handleGoogleLogin)
	s.router.HandleFunc("/auth/google/callback", s.handleGoogleCallback)
	s.router.HandleFunc("/auth/logout", s.handleLogout)

	// Admin routes (protected)
	s.router.HandleFunc("/admin", s.requireAuth(s.requireDB(handlers.HandleAdminDashboard(s))))
	s.router.HandleFunc("/admin/reservations", s.requireAuth(s.requireDB(handlers.HandleAdminReservations(s))))
	s.router.HandleFunc("/admin/reservations/delete", s.requireAuth(s.requireDB(handlers.HandleAdminDeleteReservation(s))))
	s.router.HandleFunc("/admin/reservations/download-csv", s.requireAuth(s.requireDB(handlers.HandleAdminDownloadCSV(s))))
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// requireAuth is a middleware that checks if user is authenticated
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := s.sessionStore.Get(r, authSession)

		email, ok := session.Values["email"].(string)
		if !ok || email == "" {
			http.Redirect(w, r, "/auth/google", http.StatusSeeOther)
			return
		}

		// Check if email is in whitelist
		if !s.isAdminEmail(email) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// requireDB answers 503 when the server runs without a reservation store
func (s *Server) requireDB(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.db == nil {
			http.Error(w, "Reservation storage is not configured", http.StatusServiceUnavailable)
			return
		}
		next(w, r)
	}
}

func (s *Server) isAdminEmail(email string) bool {
	return slices.Contains(s.config.AdminEmails, email)
}
