package rental

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental/model"
	"carrental/util/dates"
)

// errors used by controllers

type ErrCode string

const (
	ErrCarNotFound     ErrCode = "CAR_NOT_FOUND"
	ErrRentalNotFound  ErrCode = "RENTAL_NOT_FOUND"
	ErrMinPeriod       ErrCode = "MIN_RENTAL_PERIOD"
	ErrDatesConflict   ErrCode = "DATES_CONFLICT"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// lateFeeFactor is the per-day multiplier applied to the daily rate for every
// day the car comes back after the booked end date.
const lateFeeFactor = 1.5

// dto

type CreateParams struct {
	CarID          int64
	CustomerName   string
	DrivingLicense string
	StartDate      time.Time
	EndDate        time.Time
}

type ReturnParams struct {
	ReturnDate time.Time
	FuelLevel  float64
	Mileage    int64
}

type ReturnResult struct {
	RentalID          int64
	TotalCost         float64
	AdditionalCharges float64
}

type Repo interface {
	LockCarBookings(ctx context.Context, tx *sql.Tx, carID int64) error
	HasOverlap(ctx context.Context, tx *sql.Tx, carID int64, start, end time.Time) (bool, error)
	InsertRental(ctx context.Context, tx *sql.Tx, rental *model.Rental) (int64, error)

	GetForReturn(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, float64, error)
	SaveReturn(ctx context.Context, tx *sql.Tx, rental *model.Rental) error

	GetByID(ctx context.Context, rentalID int64) (*model.Rental, error)
}

type CarRepo interface {
	GetByID(ctx context.Context, id int64) (*model.Car, error)
}

type Service interface {
	// Create books a car for an inclusive date range, rejecting overlaps.
	Create(ctx context.Context, p CreateParams) (*model.Rental, error)

	// Return processes the one-and-only return of a rental, applying the
	// late fee when the car comes back after the booked end date.
	Return(ctx context.Context, rentalID int64, p ReturnParams) (*ReturnResult, error)

	// Get fetches a rental by id.
	Get(ctx context.Context, rentalID int64) (*model.Rental, error)
}

// ----- Service implementation -----

type service struct {
	db   *sql.DB
	r    Repo
	cars CarRepo
}

func New(db *sql.DB, r Repo, cars CarRepo) Service {
	return &service{db: db, r: r, cars: cars}
}

// Create validates the request, then runs the overlap check and the insert in
// one transaction under a per-car advisory lock so concurrent bookings for
// the same car cannot race past the check.
func (s *service) Create(ctx context.Context, p CreateParams) (*model.Rental, error) {
	car, err := s.cars.GetByID(ctx, p.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, makeErr(ErrCarNotFound)
	}

	start := dates.ToDate(p.StartDate)
	end := dates.ToDate(p.EndDate)
	if dates.Span(start, end) < 1 {
		return nil, makeErr(ErrMinPeriod)
	}

	// Both the start and the end day are billed.
	cost := car.DailyRate * float64(dates.Inclusive(start, end))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.r.LockCarBookings(ctx, tx, p.CarID); err != nil {
		return nil, err
	}

	overlap, err := s.r.HasOverlap(ctx, tx, p.CarID, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		err = makeErr(ErrDatesConflict)
		return nil, err
	}

	rental := &model.Rental{
		CarID:          p.CarID,
		CustomerName:   p.CustomerName,
		DrivingLicense: p.DrivingLicense,
		StartDate:      start,
		EndDate:        end,
		TotalCost:      cost,
	}
	rental.ID, err = s.r.InsertRental(ctx, tx, rental)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return rental, nil
}

// Return applies the late fee once; a second call for the same rental is
// rejected rather than re-accumulating charges.
func (s *service) Return(ctx context.Context, rentalID int64, p ReturnParams) (res *ReturnResult, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rental, dailyRate, err := s.r.GetForReturn(ctx, tx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrRentalNotFound)
		}
		return nil, err
	}
	if rental.Returned() {
		err = makeErr(ErrAlreadyReturned)
		return nil, err
	}

	returnDate := dates.ToDate(p.ReturnDate)
	var additional float64
	if lateDays := dates.Span(rental.EndDate, returnDate); lateDays > 0 {
		additional = float64(lateDays) * dailyRate * lateFeeFactor
	}

	rental.ReturnDate = &returnDate
	rental.ReturnFuelLevel = &p.FuelLevel
	rental.ReturnMileage = &p.Mileage
	rental.TotalCost += additional

	if err = s.r.SaveReturn(ctx, tx, rental); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &ReturnResult{
		RentalID:          rental.ID,
		TotalCost:         rental.TotalCost,
		AdditionalCharges: additional,
	}, nil
}

func (s *service) Get(ctx context.Context, rentalID int64) (*model.Rental, error) {
	rental, err := s.r.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, makeErr(ErrRentalNotFound)
	}
	return rental, nil
}
