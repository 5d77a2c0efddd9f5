package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/response"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/repositories"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"
)

type usecase struct {
	repo    repositories.Repositories
	grid    timeslot.Grid
	holdTTL time.Duration
	log     log.Logger
}

type Usecase interface {
	ListActivities(ctx context.Context) ([]entity.Activity, error)
	GetActivity(ctx context.Context, activityID string) (entity.Activity, error)
	ListFacilities(ctx context.Context, activityID string) ([]entity.Facility, error)
	GetFacility(ctx context.Context, facilityID string) (entity.Facility, error)
	AvailableSlots(ctx context.Context, facilityID string, date string) (response.Availability, error)
}

func New(repo repositories.Repositories, grid timeslot.Grid, holdTTL time.Duration, log log.Logger) Usecase {
	return &usecase{
		repo:    repo,
		grid:    grid,
		holdTTL: holdTTL,
		log:     log,
	}
}

func (u *usecase) ListActivities(ctx context.Context) ([]entity.Activity, error) {
	return u.repo.FindActivities(ctx)
}

func (u *usecase) GetActivity(ctx context.Context, activityID string) (entity.Activity, error) {
	return u.repo.FindActivityByID(ctx, activityID)
}

func (u *usecase) ListFacilities(ctx context.Context, activityID string) ([]entity.Facility, error) {
	if _, err := u.repo.FindActivityByID(ctx, activityID); err != nil {
		return nil, err
	}
	return u.repo.FindFacilitiesByActivityID(ctx, activityID)
}

func (u *usecase) GetFacility(ctx context.Context, facilityID string) (entity.Facility, error) {
	return u.repo.FindFacilityByID(ctx, facilityID)
}

// AvailableSlots does not reject past dates, callers do.
func (u *usecase) AvailableSlots(ctx context.Context, facilityID string, date string) (response.Availability, error) {
	if _, err := time.Parse(helpers.DateLayout, date); err != nil {
		return response.Availability{}, errors.InvalidRequest(fmt.Sprintf("invalid booking date %q", date))
	}

	facility, err := u.repo.FindFacilityByID(ctx, facilityID)
	if err != nil {
		return response.Availability{}, err
	}

	booked, err := u.repo.FindBookedRanges(ctx, facilityID, date)
	if err != nil {
		return response.Availability{}, err
	}

	held, err := u.repo.FindHeldSlots(ctx, facilityID, date, time.Now().Add(-u.holdTTL))
	if err != nil {
		return response.Availability{}, err
	}

	slots := timeslot.Available(u.grid, booked, held)
	if !facility.IsAvailable {
		for i := range slots {
			slots[i].Available = false
		}
	}

	return response.Availability{
		FacilityID: facilityID,
		Date:       date,
		Slots:      slots,
	}, nil
}
