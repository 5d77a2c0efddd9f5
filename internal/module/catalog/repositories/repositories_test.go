package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/repositories"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
	now  = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.Nop())
}

func teardown() {
	dbx.Close()
}

func TestFindActivities(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "name", "description", "hourly_rate", "created_at", "updated_at"}).
			AddRow("a1", "PC Gaming", "High end rigs", int64(50000), now, now).
			AddRow("a2", "PS5", "", int64(40000), now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM activities ORDER BY name")).WillReturnRows(rows)

		activities, err := repo.FindActivities(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []entity.Activity{
			{ID: "a1", Name: "PC Gaming", Description: "High end rigs", HourlyRate: 50000, CreatedAt: now, UpdatedAt: now},
			{ID: "a2", Name: "PS5", HourlyRate: 40000, CreatedAt: now, UpdatedAt: now},
		}, activities)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM activities ORDER BY name")).WillReturnError(sql.ErrConnDone)

		_, err := repo.FindActivities(context.Background())

		assert.Equal(t, errors.InternalServerError("error find activities"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindFacilityByID(t *testing.T) {
	setup()
	defer teardown()

	testCases := []struct {
		name          string
		facilityID    string
		rows          *sqlxmock.Rows
		queryErr      error
		expectedError error
		expected      entity.Facility
	}{
		{
			name:       "facility found",
			facilityID: "f1",
			rows: sqlxmock.NewRows([]string{"id", "activity_id", "name", "is_available", "created_at", "updated_at"}).
				AddRow("f1", "a1", "Rig 1", true, now, now),
			expected: entity.Facility{ID: "f1", ActivityID: "a1", Name: "Rig 1", IsAvailable: true, CreatedAt: now, UpdatedAt: now},
		},
		{
			name:          "facility not found",
			facilityID:    "missing",
			queryErr:      sql.ErrNoRows,
			expectedError: errors.NotFound("facility not found"),
		},
		{
			name:          "database error",
			facilityID:    "f1",
			queryErr:      sql.ErrConnDone,
			expectedError: errors.InternalServerError("error find facility by id"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expect := mock.ExpectQuery(regexp.QuoteMeta("FROM facilities WHERE id = $1")).WithArgs(tc.facilityID)
			if tc.queryErr != nil {
				expect.WillReturnError(tc.queryErr)
			} else {
				expect.WillReturnRows(tc.rows)
			}

			facility, err := repo.FindFacilityByID(context.Background(), tc.facilityID)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expected, facility)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindBookedRanges(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"start_time", "end_time"}).
			AddRow("05:00 PM", "05:30 PM")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT start_time, end_time FROM bookings WHERE facility_id = $1 AND booking_date = $2 AND status = 'confirmed'")).
			WithArgs("f1", "2030-01-01").
			WillReturnRows(rows)

		ranges, err := repo.FindBookedRanges(context.Background(), "f1", "2030-01-01")

		assert.NoError(t, err)
		assert.Equal(t, []timeslot.Range{{Start: "05:00 PM", End: "05:30 PM"}}, ranges)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindHeldSlots(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		since := now.Add(-30 * time.Minute)
		rows := sqlxmock.NewRows([]string{"unnest"}).
			AddRow("06:00 PM").
			AddRow("06:30 PM")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT unnest(selected_slots) FROM orders WHERE facility_id = $1 AND booking_date = $2 AND status = 'pending' AND created_at > $3")).
			WithArgs("f1", "2030-01-01", since).
			WillReturnRows(rows)

		labels, err := repo.FindHeldSlots(context.Background(), "f1", "2030-01-01", since)

		assert.NoError(t, err)
		assert.Equal(t, []string{"06:00 PM", "06:30 PM"}, labels)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
