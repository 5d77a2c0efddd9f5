package usecases

import (
	"context"
	"fmt"
	"time"

	bookingRequest "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/request"
	bookingUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/usecases"
	catalogUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/request"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/repositories"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/locker"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/google/uuid"
)

type usecase struct {
	repo     repositories.Repositories
	catalog  catalogUsecases.Usecase
	checkout bookingUsecases.Usecase
	locker   locker.Locker
	log      log.Logger
}

type Usecase interface {
	Start(ctx context.Context) (*entity.Draft, error)
	Get(ctx context.Context, id string) (*entity.Draft, error)
	SelectActivity(ctx context.Context, id string, payload *request.SelectActivity) (*entity.Draft, error)
	SelectFacility(ctx context.Context, id string, payload *request.SelectFacility) (*entity.Draft, error)
	SelectDate(ctx context.Context, id string, payload *request.SelectDate) (*entity.Draft, error)
	ToggleSlot(ctx context.Context, id string, payload *request.ToggleSlot) (*entity.Draft, error)
	ConfirmSlots(ctx context.Context, id string) (*entity.Draft, error)
	// Submit returns the saved draft together with the checkout error when the checkout failed.
	Submit(ctx context.Context, id string, payload *request.Contact, userID string, origin string) (*entity.Draft, error)
	Back(ctx context.Context, id string) (*entity.Draft, error)
	Discard(ctx context.Context, id string) error
}

func New(repo repositories.Repositories, catalog catalogUsecases.Usecase, checkout bookingUsecases.Usecase, locker locker.Locker, log log.Logger) Usecase {
	return &usecase{
		repo:     repo,
		catalog:  catalog,
		checkout: checkout,
		locker:   locker,
		log:      log,
	}
}

func (u *usecase) Start(ctx context.Context) (*entity.Draft, error) {
	draft := entity.New(uuid.NewString(), time.Now())
	if err := u.repo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *usecase) Get(ctx context.Context, id string) (*entity.Draft, error) {
	return u.repo.Find(ctx, id)
}

// mutate applies fn under the draft's lock and saves the result. Nothing is
// saved when fn fails, so a rejected transition leaves the stored draft as it was.
func (u *usecase) mutate(ctx context.Context, id string, fn func(d *entity.Draft) error) (*entity.Draft, error) {
	unlock, err := u.locker.Lock(ctx, "draft:"+id)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error lock draft %s: %v", id, err))
		return nil, errors.Conflict("draft is being updated, please retry")
	}
	defer unlock()

	draft, err := u.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(draft); err != nil {
		return nil, err
	}

	draft.UpdatedAt = time.Now()
	if err := u.repo.Save(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (u *usecase) SelectActivity(ctx context.Context, id string, payload *request.SelectActivity) (*entity.Draft, error) {
	return u.mutate(ctx, id, func(d *entity.Draft) error {
		activity, err := u.catalog.GetActivity(ctx, payload.ActivityID)
		if err != nil {
			return err
		}
		facilities, err := u.catalog.ListFacilities(ctx, payload.ActivityID)
		if err != nil {
			return err
		}
		return d.SelectActivity(activity, facilities)
	})
}

func (u *usecase) SelectFacility(ctx context.Context, id string, payload *request.SelectFacility) (*entity.Draft, error) {
	return u.mutate(ctx, id, func(d *entity.Draft) error {
		facility, err := u.catalog.GetFacility(ctx, payload.FacilityID)
		if err != nil {
			return err
		}
		return d.SelectFacility(facility)
	})
}

func (u *usecase) SelectDate(ctx context.Context, id string, payload *request.SelectDate) (*entity.Draft, error) {
	if _, err := time.Parse(helpers.DateLayout, payload.Date); err != nil {
		return nil, errors.InvalidRequest("date must be YYYY-MM-DD")
	}
	if helpers.IsPastDate(payload.Date) {
		return nil, errors.InvalidRequest("booking date is in the past")
	}

	return u.mutate(ctx, id, func(d *entity.Draft) error {
		if d.Step != entity.StepChoosingSlots || d.Facility == nil {
			return errors.IllegalTransition(fmt.Sprintf("cannot choose a date while %s", d.Step))
		}
		availability, err := u.catalog.AvailableSlots(ctx, d.Facility.ID, payload.Date)
		if err != nil {
			return err
		}
		return d.SetAvailability(payload.Date, availability.Slots)
	})
}

func (u *usecase) ToggleSlot(ctx context.Context, id string, payload *request.ToggleSlot) (*entity.Draft, error) {
	return u.mutate(ctx, id, func(d *entity.Draft) error {
		return d.ToggleSlot(payload.Time)
	})
}

func (u *usecase) ConfirmSlots(ctx context.Context, id string) (*entity.Draft, error) {
	return u.mutate(ctx, id, func(d *entity.Draft) error {
		return d.ConfirmSlots()
	})
}

func (u *usecase) Submit(ctx context.Context, id string, payload *request.Contact, userID string, origin string) (*entity.Draft, error) {
	var checkoutErr error

	draft, err := u.mutate(ctx, id, func(d *entity.Draft) error {
		if err := d.BeginSubmit(payload.Email, payload.Phone); err != nil {
			return err
		}

		resp, err := u.checkout.CreateCheckout(ctx, checkoutRequest(d), userID, origin)
		if err != nil {
			u.log.Warn(ctx, fmt.Sprintf("checkout of draft %s failed: %v", d.ID, err))
			checkoutErr = err
			return d.Fail(err.Error())
		}

		return d.Succeed(resp.URL, resp.OrderID)
	})
	if err != nil {
		return nil, err
	}

	return draft, checkoutErr
}

func (u *usecase) Back(ctx context.Context, id string) (*entity.Draft, error) {
	return u.mutate(ctx, id, func(d *entity.Draft) error {
		return d.Back()
	})
}

func (u *usecase) Discard(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

func checkoutRequest(d *entity.Draft) *bookingRequest.Booking {
	req := &bookingRequest.Booking{
		BookingDate:   d.Date,
		SelectedSlots: append([]string(nil), d.SelectedSlots...),
		TotalAmount:   d.TotalAmount(),
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
	}
	if d.Activity != nil {
		req.ActivityName = d.Activity.Name
	}
	if d.Facility != nil {
		req.FacilityID = d.Facility.ID
		req.FacilityName = d.Facility.Name
	}
	if len(d.SelectedSlots) > 0 {
		// the checkout service derives the real span from the grid
		req.StartTime = d.SelectedSlots[0]
		req.EndTime = d.SelectedSlots[len(d.SelectedSlots)-1]
	}
	return req
}
