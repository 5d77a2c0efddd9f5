package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindActivities(ctx context.Context) ([]entity.Activity, error)
	FindActivityByID(ctx context.Context, id string) (entity.Activity, error)
	FindFacilitiesByActivityID(ctx context.Context, activityID string) ([]entity.Facility, error)
	FindFacilityByID(ctx context.Context, id string) (entity.Facility, error)
	// FindBookedRanges returns the start/end labels of confirmed bookings on date.
	FindBookedRanges(ctx context.Context, facilityID string, date string) ([]timeslot.Range, error)
	// FindHeldSlots returns slot labels of pending orders created after since.
	FindHeldSlots(ctx context.Context, facilityID string, date string, since time.Time) ([]string, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const (
	activityColumns = `id, name, COALESCE(description, '') AS description, hourly_rate, created_at, updated_at`
	facilityColumns = `id, activity_id, name, is_available, created_at, updated_at`
)

func (r *repositories) FindActivities(ctx context.Context) ([]entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY name`
	activities := []entity.Activity{}
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find activities: %v", err))
		return nil, errors.InternalServerError("error find activities")
	}
	return activities, nil
}

func (r *repositories) FindActivityByID(ctx context.Context, id string) (entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	var activity entity.Activity
	err := r.db.GetContext(ctx, &activity, query, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Activity{}, errors.NotFound("activity not found")
	}
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find activity %s: %v", id, err))
		return entity.Activity{}, errors.InternalServerError("error find activity by id")
	}
	return activity, nil
}

func (r *repositories) FindFacilitiesByActivityID(ctx context.Context, activityID string) ([]entity.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE activity_id = $1 ORDER BY name`
	facilities := []entity.Facility{}
	if err := r.db.SelectContext(ctx, &facilities, query, activityID); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find facilities of activity %s: %v", activityID, err))
		return nil, errors.InternalServerError("error find facilities by activity id")
	}
	return facilities, nil
}

func (r *repositories) FindFacilityByID(ctx context.Context, id string) (entity.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE id = $1`
	var facility entity.Facility
	err := r.db.GetContext(ctx, &facility, query, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Facility{}, errors.NotFound("facility not found")
	}
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find facility %s: %v", id, err))
		return entity.Facility{}, errors.InternalServerError("error find facility by id")
	}
	return facility, nil
}

func (r *repositories) FindBookedRanges(ctx context.Context, facilityID string, date string) ([]timeslot.Range, error) {
	query := `SELECT start_time, end_time FROM bookings WHERE facility_id = $1 AND booking_date = $2 AND status = 'confirmed'`
	ranges := []timeslot.Range{}
	if err := r.db.SelectContext(ctx, &ranges, query, facilityID, date); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find booked ranges of facility %s on %s: %v", facilityID, date, err))
		return nil, errors.InternalServerError("error find booked slots")
	}
	return ranges, nil
}

func (r *repositories) FindHeldSlots(ctx context.Context, facilityID string, date string, since time.Time) ([]string, error) {
	query := `SELECT unnest(selected_slots) FROM orders WHERE facility_id = $1 AND booking_date = $2 AND status = 'pending' AND created_at > $3`
	labels := []string{}
	if err := r.db.SelectContext(ctx, &labels, query, facilityID, date, since); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find held slots of facility %s on %s: %v", facilityID, date, err))
		return nil, errors.InternalServerError("error find held slots")
	}
	return labels, nil
}
