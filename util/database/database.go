package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

// New opens a Postgres pool through the pgx stdlib driver and verifies the
// connection before handing it out.
func New(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS cars (
	id           BIGSERIAL PRIMARY KEY,
	model        TEXT NOT NULL,
	type         TEXT NOT NULL,
	daily_rate   NUMERIC NOT NULL CHECK (daily_rate >= 0),
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	features     JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS rentals (
	id                BIGSERIAL PRIMARY KEY,
	car_id            BIGINT NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
	customer_name     TEXT NOT NULL,
	driving_license   TEXT NOT NULL,
	start_date        TIMESTAMPTZ NOT NULL,
	end_date          TIMESTAMPTZ NOT NULL,
	return_date       TIMESTAMPTZ,
	return_fuel_level NUMERIC,
	return_mileage    BIGINT,
	total_cost        NUMERIC NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rentals_car_dates ON rentals (car_id, start_date, end_date);
CREATE INDEX IF NOT EXISTS idx_rentals_start_date ON rentals (start_date);
`

// EnsureSchema creates the tables on startup if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "ensure schema")
	}
	return nil
}
