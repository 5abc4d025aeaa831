package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// ErrNotFound is returned when no reservation matches the lookup
var ErrNotFound = errors.New("reservation not found")

const reservationColumns = `id, code, reservation_date, reservation_time, guests, occasion, name, email, phone, special_requests, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*Reservation, error) {
	res := &Reservation{}
	err := row.Scan(&res.ID, &res.Code, &res.Date, &res.Time, &res.Guests, &res.Occasion,
		&res.Name, &res.Email, &res.Phone, &res.SpecialRequests, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateReservation stores a reservation and assigns it a confirmation code
func (db *DB) CreateReservation(ctx context.Context, res *Reservation) (*Reservation, error) {
	if res.Code == "" {
		res.Code = uuid.NewString()
	}

	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO reservations (code, reservation_date, reservation_time, guests, occasion, name, email, phone, special_requests)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		res.Code, res.Date, res.Time, res.Guests, res.Occasion, res.Name, res.Email, res.Phone, res.SpecialRequests,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return db.GetReservationByID(ctx, id)
}

// GetReservationByID retrieves a reservation by ID
func (db *DB) GetReservationByID(ctx context.Context, id int64) (*Reservation, error) {
	res, err := scanReservation(db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// GetReservationByCode retrieves a reservation by its confirmation code
func (db *DB) GetReservationByCode(ctx context.Context, code string) (*Reservation, error) {
	res, err := scanReservation(db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE code = $1`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

// GetAllReservations retrieves all reservations, soonest first
func (db *DB) GetAllReservations(ctx context.Context) (reservations []*Reservation, err error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY reservation_date, reservation_time, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer func() {
		err = multierr.Append(err, rows.Close())
	}()

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}

// DeleteReservation deletes a reservation
func (db *DB) DeleteReservation(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateReservationPhone replaces the stored phone number of a reservation
func (db *DB) UpdateReservationPhone(ctx context.Context, id int64, phone string) error {
	_, err := db.ExecContext(ctx, `UPDATE reservations SET phone = $1 WHERE id = $2`, phone, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation phone: %w", err)
	}
	return nil
}
