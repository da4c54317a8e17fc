// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"carrental/model"

	"github.com/pkg/errors"
)

// StatRow is one rental joined with its car's model, as consumed by the
// statistics aggregation.
type StatRow struct {
	Model     string
	StartDate time.Time
	EndDate   time.Time
	TotalCost float64
}

type Repo interface {
	// Booking. Tx-scoped so the check and the insert commit or fail together.
	LockCarBookings(ctx context.Context, tx *sql.Tx, carID int64) error
	HasOverlap(ctx context.Context, tx *sql.Tx, carID int64, start, end time.Time) (bool, error)
	InsertRental(ctx context.Context, tx *sql.Tx, rental *model.Rental) (int64, error)

	// Return processing.
	GetForReturn(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, float64, error)
	SaveReturn(ctx context.Context, tx *sql.Tx, rental *model.Rental) error

	// Reads.
	GetByID(ctx context.Context, rentalID int64) (*model.Rental, error)
	ListStartedBetween(ctx context.Context, from, to time.Time) ([]StatRow, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

// Booking

// LockCarBookings takes a transaction-scoped advisory lock keyed by car id,
// serializing concurrent bookings for the same car. The lock is released at
// commit or rollback.
func (r *repo) LockCarBookings(ctx context.Context, tx *sql.Tx, carID int64) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, carID)
	return errors.Wrap(err, "lock car bookings")
}

func (r *repo) HasOverlap(ctx context.Context, tx *sql.Tx, carID int64, start, end time.Time) (bool, error) {
	// Either endpoint of the requested range falling inside an existing
	// rental's [start_date,end_date] counts as a conflict.
	const q = `
SELECT EXISTS (
	SELECT 1 FROM rentals
	WHERE car_id = $1
	  AND (($2 >= start_date AND $2 <= end_date)
	    OR ($3 >= start_date AND $3 <= end_date))
)`
	var exists bool
	if err := tx.QueryRowContext(ctx, q, carID, start, end).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check overlap")
	}
	return exists, nil
}

func (r *repo) InsertRental(ctx context.Context, tx *sql.Tx, rental *model.Rental) (int64, error) {
	const q = `
INSERT INTO rentals (car_id, customer_name, driving_license, start_date, end_date, total_cost)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	var id int64
	err := tx.QueryRowContext(ctx, q,
		rental.CarID, rental.CustomerName, rental.DrivingLicense,
		rental.StartDate, rental.EndDate, rental.TotalCost,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert rental")
	}
	return id, nil
}

// Return processing

// GetForReturn loads the rental plus its car's daily rate, locking the row so
// two concurrent returns cannot both pass the already-returned check.
func (r *repo) GetForReturn(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, float64, error) {
	const q = `
SELECT r.id, r.car_id, r.customer_name, r.driving_license,
       r.start_date, r.end_date, r.return_date, r.return_fuel_level, r.return_mileage,
       r.total_cost, c.daily_rate
FROM rentals r
JOIN cars c ON c.id = r.car_id
WHERE r.id = $1
FOR UPDATE OF r`
	var (
		rental model.Rental
		rate   float64
	)
	err := tx.QueryRowContext(ctx, q, rentalID).Scan(
		&rental.ID, &rental.CarID, &rental.CustomerName, &rental.DrivingLicense,
		&rental.StartDate, &rental.EndDate, &rental.ReturnDate, &rental.ReturnFuelLevel, &rental.ReturnMileage,
		&rental.TotalCost, &rate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, err
		}
		return nil, 0, errors.Wrap(err, "get rental for return")
	}
	return &rental, rate, nil
}

func (r *repo) SaveReturn(ctx context.Context, tx *sql.Tx, rental *model.Rental) error {
	const q = `
UPDATE rentals
SET return_date = $2,
    return_fuel_level = $3,
    return_mileage = $4,
    total_cost = $5
WHERE id = $1`
	_, err := tx.ExecContext(ctx, q,
		rental.ID, rental.ReturnDate, rental.ReturnFuelLevel, rental.ReturnMileage, rental.TotalCost)
	return errors.Wrap(err, "save return")
}

// Reads

func (r *repo) GetByID(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = `
SELECT id, car_id, customer_name, driving_license,
       start_date, end_date, return_date, return_fuel_level, return_mileage, total_cost
FROM rentals
WHERE id = $1`
	var rental model.Rental
	err := r.db.QueryRowContext(ctx, q, rentalID).Scan(
		&rental.ID, &rental.CarID, &rental.CustomerName, &rental.DrivingLicense,
		&rental.StartDate, &rental.EndDate, &rental.ReturnDate, &rental.ReturnFuelLevel, &rental.ReturnMileage,
		&rental.TotalCost,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get rental")
	}
	return &rental, nil
}

func (r *repo) ListStartedBetween(ctx context.Context, from, to time.Time) ([]StatRow, error) {
	const q = `
SELECT c.model, r.start_date, r.end_date, r.total_cost
FROM rentals r
JOIN cars c ON c.id = r.car_id
WHERE r.start_date >= $1 AND r.start_date < $2
ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "list rentals for period")
	}
	defer rows.Close()

	var out []StatRow
	for rows.Next() {
		var s StatRow
		if err := rows.Scan(&s.Model, &s.StartDate, &s.EndDate, &s.TotalCost); err != nil {
			return nil, errors.Wrap(err, "scan stat row")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
