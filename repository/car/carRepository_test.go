// repository/car/repo_test.go
package carrepo

import (
	"context"
	"testing"
	"time"

	"carrental/util/dates"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.Parse(s)
	require.NoError(t, err)
	return d
}

func carRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "model", "type", "daily_rate", "is_available", "features"})
}

func TestListAvailable_AllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start, end := day(t, "2024-01-03"), day(t, "2024-01-07")
	maxRate := 100.0

	// The availability query excludes a car when either query endpoint lands
	// inside an existing rental's inclusive interval, mirroring the booking
	// check; type and rate filters are plain comparisons appended after it.
	mock.ExpectQuery(`NOT EXISTS \(\s*SELECT 1 FROM rentals r\s*WHERE r\.car_id = c\.id\s*`+
		`AND \(\(\$1 >= r\.start_date AND \$1 <= r\.end_date\)\s*OR \(\$2 >= r\.start_date AND \$2 <= r\.end_date\)\)`+
		`[\s\S]*c\.type = \$3[\s\S]*c\.daily_rate <= \$4`).
		WithArgs(start, end, "SUV", maxRate).
		WillReturnRows(carRows().AddRow(1, "X5", "SUV", 90.0, true, []byte(`["gps","awd"]`)))

	r := New(db)
	cars, err := r.ListAvailable(context.Background(), Filter{
		Start:        &start,
		End:          &end,
		Type:         "SUV",
		MaxDailyRate: &maxRate,
	})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	require.Equal(t, "X5", cars[0].Model)
	require.Equal(t, []string{"gps", "awd"}, cars[0].Features)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailable_PartialDateRangeIgnored(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Only one end of the range set: the date filter must not apply, so the
	// query carries no WHERE clause at all.
	mock.ExpectQuery(`(?s)\A\s*SELECT c\.id, c\.model, c\.type, c\.daily_rate, c\.is_available, c\.features\s*FROM cars c\s*\z`).
		WillReturnRows(carRows().
			AddRow(1, "X5", "SUV", 90.0, true, []byte(`[]`)).
			AddRow(2, "Corolla", "Sedan", 45.0, true, []byte(`[]`)))

	start := day(t, "2024-01-03")
	r := New(db)
	cars, err := r.ListAvailable(context.Background(), Filter{Start: &start})
	require.NoError(t, err)
	require.Len(t, cars, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
