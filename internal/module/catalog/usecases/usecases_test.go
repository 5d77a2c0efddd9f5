package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/mocks"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup(t *testing.T) {
	grid, err := timeslot.NewGrid("04:30 PM", "08:00 PM", 30*time.Minute)
	assert.NoError(t, err)

	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, grid, 30*time.Minute, log_internal.Nop())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestListFacilities(t *testing.T) {
	setup(t)
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		facilities := []entity.Facility{{ID: "f1", ActivityID: "a1", Name: "Rig 1", IsAvailable: true}}

		// mock repo
		repoMock.On("FindActivityByID", ctx, "a1").Return(entity.Activity{ID: "a1", HourlyRate: 50000}, nil).Once()
		repoMock.On("FindFacilitiesByActivityID", ctx, "a1").Return(facilities, nil).Once()

		// test
		resp, err := uc.ListFacilities(ctx, "a1")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, facilities, resp)
	})

	t.Run("unknown activity", func(t *testing.T) {
		repoMock.On("FindActivityByID", ctx, "zz").Return(entity.Activity{}, errors.NotFound("activity not found")).Once()

		_, err := uc.ListFacilities(ctx, "zz")

		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestAvailableSlots(t *testing.T) {
	setup(t)
	defer teardown()
	ctx := context.Background()

	t.Run("booked and held slots are excluded", func(t *testing.T) {
		// mock repo
		repoMock.On("FindFacilityByID", ctx, "f1").Return(entity.Facility{ID: "f1", IsAvailable: true}, nil).Once()
		repoMock.On("FindBookedRanges", ctx, "f1", "2030-01-01").Return([]timeslot.Range{{Start: "05:00 PM", End: "05:30 PM"}}, nil).Once()
		repoMock.On("FindHeldSlots", ctx, "f1", "2030-01-01", mock.AnythingOfType("time.Time")).Return([]string{"07:00 PM"}, nil).Once()

		// test
		resp, err := uc.AvailableSlots(ctx, "f1", "2030-01-01")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "f1", resp.FacilityID)
		unavailable := []string{}
		for _, s := range resp.Slots {
			if !s.Available {
				unavailable = append(unavailable, s.Label)
			}
		}
		assert.Equal(t, []string{"05:00 PM", "05:30 PM", "07:00 PM"}, unavailable)
	})

	t.Run("facility switched off", func(t *testing.T) {
		repoMock.On("FindFacilityByID", ctx, "f2").Return(entity.Facility{ID: "f2", IsAvailable: false}, nil).Once()
		repoMock.On("FindBookedRanges", ctx, "f2", "2030-01-01").Return([]timeslot.Range{}, nil).Once()
		repoMock.On("FindHeldSlots", ctx, "f2", "2030-01-01", mock.AnythingOfType("time.Time")).Return([]string{}, nil).Once()

		resp, err := uc.AvailableSlots(ctx, "f2", "2030-01-01")

		assert.NoError(t, err)
		for _, s := range resp.Slots {
			assert.False(t, s.Available)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := uc.AvailableSlots(ctx, "f1", "01/01/2030")

		assert.True(t, errors.HasCode(err, errors.CodeInvalidRequest))
	})
}
