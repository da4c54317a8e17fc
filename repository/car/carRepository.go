package carrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"carrental/model"

	"github.com/pkg/errors"
)

// Filter narrows ListAvailable. Start/End apply only when both are set:
// a car is dropped when an existing rental's interval contains either query
// endpoint. A requested range that fully swallows a short rental without
// touching its endpoints is not treated as a conflict; the booking path uses
// the same predicate so the two stay consistent.
type Filter struct {
	Start        *time.Time
	End          *time.Time
	Type         string
	MaxDailyRate *float64
}

type Repo interface {
	ListAvailable(ctx context.Context, f Filter) ([]model.Car, error)
	Create(ctx context.Context, car *model.Car) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Car, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) ListAvailable(ctx context.Context, f Filter) ([]model.Car, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`
SELECT c.id, c.model, c.type, c.daily_rate, c.is_available, c.features
FROM cars c`)

	var where []string
	if f.Start != nil && f.End != nil {
		args = append(args, *f.Start, *f.End)
		where = append(where, fmt.Sprintf(`NOT EXISTS (
	SELECT 1 FROM rentals r
	WHERE r.car_id = c.id
	  AND (($%d >= r.start_date AND $%d <= r.end_date)
	    OR ($%d >= r.start_date AND $%d <= r.end_date))
)`, len(args)-1, len(args)-1, len(args), len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("c.type = $%d", len(args)))
	}
	if f.MaxDailyRate != nil {
		args = append(args, *f.MaxDailyRate)
		where = append(where, fmt.Sprintf("c.daily_rate <= $%d", len(args)))
	}
	if len(where) > 0 {
		sb.WriteString("\nWHERE " + strings.Join(where, "\n  AND "))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "list cars")
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repo) Create(ctx context.Context, car *model.Car) (int64, error) {
	features, err := json.Marshal(car.Features)
	if err != nil {
		return 0, errors.Wrap(err, "marshal features")
	}
	const q = `
INSERT INTO cars (model, type, daily_rate, is_available, features)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, car.Model, car.Type, car.DailyRate, car.IsAvailable, features).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "insert car")
	}
	return id, nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	const q = `
SELECT c.id, c.model, c.type, c.daily_rate, c.is_available, c.features
FROM cars c
WHERE c.id = $1`
	row := r.db.QueryRowContext(ctx, q, id)
	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanCar(row rowScanner) (*model.Car, error) {
	var (
		c        model.Car
		features []byte
	)
	if err := row.Scan(&c.ID, &c.Model, &c.Type, &c.DailyRate, &c.IsAvailable, &features); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "scan car")
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &c.Features); err != nil {
			return nil, errors.Wrap(err, "decode features")
		}
	}
	return &c, nil
}
