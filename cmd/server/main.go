package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/AlexTLDR/little-lemon/internal/config"
	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

func main() {
	// Load .env file (ignore error if a file doesn't exist)
	// Use Overload to force to overwrite any existing environment variables
	err := godotenv.Overload()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	} else {
		log.Printf(".env file loaded successfully (with overload)")
	}

	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run() (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize database
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		return err
	}

	// Create and start the server
	srv := server.New(cfg, db)

	log.Printf("Starting %s reservations on :%s", cfg.RestaurantName, cfg.Port)
	return srv.Start(ctx, ":"+cfg.Port)
}
