package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AlexTLDR/little-lemon/internal/database"
	"github.com/AlexTLDR/little-lemon/internal/utils"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = "sqlite3://little-lemon.db"
	}
	region := os.Getenv("PHONE_REGION")
	if region == "" {
		region = "US"
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	reservations, err := db.GetAllReservations(ctx)
	if err != nil {
		log.Fatalf("Failed to load reservations: %v", err)
	}

	fmt.Printf("Found %d reservations to process\n", len(reservations))

	// Normalize each phone number
	updated := 0
	failed := 0
	for _, res := range reservations {
		normalized, err := utils.NormalizePhoneNumber(res.Phone, region)
		if err != nil {
			log.Printf("Failed to normalize phone %q (ID: %d): %v", res.Phone, res.ID, err)
			failed++
			continue
		}

		// Only update if the phone number changed
		if normalized != res.Phone {
			if err := db.UpdateReservationPhone(ctx, res.ID, normalized); err != nil {
				log.Printf("Failed to update phone for ID %d: %v", res.ID, err)
				failed++
				continue
			}
			fmt.Printf("Updated ID %d: %q -> %q\n", res.ID, res.Phone, normalized)
			updated++
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total: %d\n", len(reservations))
	fmt.Printf("  Updated: %d\n", updated)
	fmt.Printf("  Failed: %d\n", failed)
	fmt.Printf("  Unchanged: %d\n", len(reservations)-updated-failed)
}
