package usecases_test

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	bookingMocks "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/mocks"
	bookingRequest "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/request"
	bookingResponse "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/response"
	catalogMocks "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/mocks"
	catalogEntity "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/entity"
	catalogResponse "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/models/response"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/mocks"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/request"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	lockerMocks "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/locker/mocks"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	repoMock     *mocks.Repositories
	catalogMock  *catalogMocks.Usecase
	checkoutMock *bookingMocks.Usecase
	lockerMock   *lockerMocks.Locker
	uc           usecases.Usecase
	date         = time.Now().AddDate(0, 0, 3).Format(helpers.DateLayout)

	activity = catalogEntity.Activity{ID: "a1", Name: "PC Gaming", HourlyRate: 50000}
	pc1      = catalogEntity.Facility{ID: "f1", ActivityID: "a1", Name: "PC 1", IsAvailable: true}
	pc2      = catalogEntity.Facility{ID: "f2", ActivityID: "a1", Name: "PC 2", IsAvailable: false}
)

func setup() {
	repoMock = new(mocks.Repositories)
	catalogMock = new(catalogMocks.Usecase)
	checkoutMock = new(bookingMocks.Usecase)
	lockerMock = new(lockerMocks.Locker)
	uc = usecases.New(repoMock, catalogMock, checkoutMock, lockerMock, log_internal.Nop())

	lockerMock.On("Lock", mock.Anything, mock.AnythingOfType("string")).Return(func() {}, nil)
}

func teardown() {
	repoMock = nil
	catalogMock = nil
	checkoutMock = nil
	lockerMock = nil
	uc = nil
}

func mockCatalog() {
	grid, _ := timeslot.NewGrid("04:30 PM", "08:00 PM", 30*time.Minute)
	catalogMock.On("GetActivity", mock.Anything, "a1").Return(activity, nil)
	catalogMock.On("ListFacilities", mock.Anything, "a1").Return([]catalogEntity.Facility{pc1, pc2}, nil)
	catalogMock.On("GetFacility", mock.Anything, "f1").Return(pc1, nil)
	catalogMock.On("GetFacility", mock.Anything, "f2").Return(pc2, nil)
	catalogMock.On("AvailableSlots", mock.Anything, "f1", date).
		Return(catalogResponse.Availability{FacilityID: "f1", Date: date, Slots: timeslot.Available(grid, nil, nil)}, nil)
}

// readyToSubmit walks a stored draft to the contact step.
func readyToSubmit(t *testing.T, draft *entity.Draft) {
	ctx := context.Background()
	_, err := uc.SelectActivity(ctx, draft.ID, &request.SelectActivity{ActivityID: "a1"})
	require.NoError(t, err)
	_, err = uc.SelectFacility(ctx, draft.ID, &request.SelectFacility{FacilityID: "f1"})
	require.NoError(t, err)
	_, err = uc.SelectDate(ctx, draft.ID, &request.SelectDate{Date: date})
	require.NoError(t, err)
	_, err = uc.ToggleSlot(ctx, draft.ID, &request.ToggleSlot{Time: "05:00 PM"})
	require.NoError(t, err)
	_, err = uc.ToggleSlot(ctx, draft.ID, &request.ToggleSlot{Time: "05:30 PM"})
	require.NoError(t, err)
	_, err = uc.ConfirmSlots(ctx, draft.ID)
	require.NoError(t, err)
}

func TestStart(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("Save", mock.Anything, mock.AnythingOfType("*entity.Draft")).Return(nil).Once()

	draft, err := uc.Start(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, entity.StepChoosingActivity, draft.Step)
}

func TestSubmit(t *testing.T) {
	t.Run("two slots at 500 rupees check out for 1000", func(t *testing.T) {
		setup()
		defer teardown()

		// mock data
		draft := entity.New("d1", time.Now())
		mockCatalog()

		// mock repo
		repoMock.On("Find", mock.Anything, "d1").Return(draft, nil)
		repoMock.On("Save", mock.Anything, draft).Return(nil)
		checkoutMock.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(b *bookingRequest.Booking) bool {
			return b.TotalAmount == 100000 &&
				b.FacilityID == "f1" &&
				b.BookingDate == date &&
				b.CustomerEmail == "g@x.com" &&
				b.CustomerPhone == "+911234567890" &&
				assert.ObjectsAreEqual([]string{"05:00 PM", "05:30 PM"}, b.SelectedSlots)
		}), "u1", "http://localhost:3000").
			Return(bookingResponse.Checkout{URL: "https://checkout", SessionID: "cs_test_1", OrderID: "o1"}, nil).Once()

		// test
		readyToSubmit(t, draft)
		assert.Equal(t, int64(100000), draft.TotalAmount())
		got, err := uc.Submit(context.Background(), "d1", &request.Contact{Email: "g@x.com", Phone: "+911234567890"}, "u1", "http://localhost:3000")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StepSucceeded, got.Step)
		assert.Equal(t, "o1", got.OrderID)
		assert.Equal(t, "https://checkout", got.CheckoutURL)
		checkoutMock.AssertExpectations(t)
	})

	t.Run("checkout failure keeps the draft for a retry", func(t *testing.T) {
		setup()
		defer teardown()

		draft := entity.New("d1", time.Now())
		mockCatalog()
		repoMock.On("Find", mock.Anything, "d1").Return(draft, nil)
		repoMock.On("Save", mock.Anything, draft).Return(nil)
		providerErr := errors.PaymentProviderError("payment provider unavailable, please try again")
		checkoutMock.On("CreateCheckout", mock.Anything, mock.Anything, "", "http://localhost:3000").
			Return(bookingResponse.Checkout{}, providerErr).Once()

		readyToSubmit(t, draft)
		got, err := uc.Submit(context.Background(), "d1", &request.Contact{Email: "g@x.com", Phone: "+911234567890"}, "", "http://localhost:3000")

		assert.Equal(t, providerErr, err)
		assert.Equal(t, entity.StepFailed, got.Step)
		assert.Equal(t, []string{"05:00 PM", "05:30 PM"}, got.SelectedSlots)
		assert.Equal(t, "payment provider unavailable, please try again", got.LastError)

		// resubmission goes through
		checkoutMock.On("CreateCheckout", mock.Anything, mock.Anything, "", "http://localhost:3000").
			Return(bookingResponse.Checkout{URL: "https://checkout", OrderID: "o2"}, nil).Once()

		got, err = uc.Submit(context.Background(), "d1", &request.Contact{Email: "g@x.com", Phone: "+911234567890"}, "", "http://localhost:3000")

		assert.NoError(t, err)
		assert.Equal(t, entity.StepSucceeded, got.Step)
		assert.Equal(t, "o2", got.OrderID)
	})

	t.Run("invalid contact is rejected before checkout", func(t *testing.T) {
		setup()
		defer teardown()

		draft := entity.New("d1", time.Now())
		mockCatalog()
		repoMock.On("Find", mock.Anything, "d1").Return(draft, nil)
		repoMock.On("Save", mock.Anything, draft).Return(nil)

		readyToSubmit(t, draft)
		_, err := uc.Submit(context.Background(), "d1", &request.Contact{Email: "gx.com", Phone: "+911234567890"}, "", "http://localhost:3000")

		assert.True(t, errors.HasCode(err, errors.CodeInvalidRequest))
		assert.Equal(t, entity.StepEnteringContact, draft.Step)
		checkoutMock.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSelectFacility(t *testing.T) {
	setup()
	defer teardown()

	t.Run("unavailable facility leaves the stored draft untouched", func(t *testing.T) {
		draft := entity.New("d1", time.Now())
		draft.Step = entity.StepChoosingFacility
		draft.Activity = &activity
		mockCatalog()
		repoMock.On("Find", mock.Anything, "d1").Return(draft, nil).Once()

		_, err := uc.SelectFacility(context.Background(), "d1", &request.SelectFacility{FacilityID: "f2"})

		assert.True(t, errors.HasCode(err, errors.CodeInvalidRequest))
		assert.Equal(t, entity.StepChoosingFacility, draft.Step)
		assert.Nil(t, draft.Facility)
		repoMock.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSelectDate(t *testing.T) {
	setup()
	defer teardown()

	t.Run("past date", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -1).Format(helpers.DateLayout)

		_, err := uc.SelectDate(context.Background(), "d1", &request.SelectDate{Date: past})

		assert.Equal(t, errors.InvalidRequest("booking date is in the past"), err)
		repoMock.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	})

	t.Run("before a facility is chosen", func(t *testing.T) {
		repoMock.On("Find", mock.Anything, "d2").Return(entity.New("d2", time.Now()), nil).Once()

		_, err := uc.SelectDate(context.Background(), "d2", &request.SelectDate{Date: date})

		assert.True(t, errors.HasCode(err, errors.CodeIllegalTransition))
	})
}

func TestBack(t *testing.T) {
	setup()
	defer teardown()

	t.Run("keeps selections", func(t *testing.T) {
		draft := entity.New("d1", time.Now())
		mockCatalog()
		repoMock.On("Find", mock.Anything, "d1").Return(draft, nil)
		repoMock.On("Save", mock.Anything, draft).Return(nil)
		readyToSubmit(t, draft)

		got, err := uc.Back(context.Background(), "d1")

		assert.NoError(t, err)
		assert.Equal(t, entity.StepChoosingSlots, got.Step)
		assert.Equal(t, []string{"05:00 PM", "05:30 PM"}, got.SelectedSlots)
		assert.Equal(t, date, got.Date)
	})
}

func TestMutateLockFailure(t *testing.T) {
	repoMock = new(mocks.Repositories)
	lockerMock = new(lockerMocks.Locker)
	uc = usecases.New(repoMock, new(catalogMocks.Usecase), new(bookingMocks.Usecase), lockerMock, log_internal.Nop())
	defer teardown()

	lockerMock.On("Lock", mock.Anything, "draft:d1").Return(nil, goerrors.New("redsync: failed to acquire lock")).Once()

	_, err := uc.ConfirmSlots(context.Background(), "d1")

	assert.Equal(t, errors.Conflict("draft is being updated, please retry"), err)
	repoMock.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestGet(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("Find", mock.Anything, "gone").Return(nil, errors.NotFound("draft not found")).Once()

	_, err := uc.Get(context.Background(), "gone")

	assert.Equal(t, errors.NotFound("draft not found"), err)
}

func TestDiscard(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("Delete", mock.Anything, "d1").Return(nil).Once()

	assert.NoError(t, uc.Discard(context.Background(), "d1"))
}
