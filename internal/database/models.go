package database

import (
	"database/sql"
	"time"
)

type Reservation struct {
	ID              int64
	Code            string
	Date            time.Time
	Time            string
	Guests          int
	Occasion        string
	Name            string
	Email           string
	Phone           string
	SpecialRequests sql.NullString
	CreatedAt       time.Time
}
