package usecases_test

import (
	"context"
	"sync"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
)

// fakeRepo keeps a single order in memory and confirms it with the same
// compare-and-set the orders table uses.
type fakeRepo struct {
	mu       sync.Mutex
	order    entity.Order
	bookings []entity.Booking
}

func newFakeRepo(order entity.Order) *fakeRepo {
	return &fakeRepo{order: order}
}

func (f *fakeRepo) InsertOrder(ctx context.Context, order entity.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = order
	return order.ID, nil
}

func (f *fakeRepo) FindOrderBySessionID(ctx context.Context, sessionID string) (entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order.StripeSessionID != sessionID {
		return entity.Order{}, errors.OrderNotFound("order not found")
	}
	return f.order, nil
}

func (f *fakeRepo) ConfirmOrder(ctx context.Context, order entity.Order) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order.ID != order.ID || f.order.Status != entity.OrderStatusPending {
		return false, nil
	}
	f.order.Status = entity.OrderStatusPaid
	f.bookings = append(f.bookings, entity.BookingFromOrder(order))
	return true, nil
}

func (f *fakeRepo) UpdateOrderTaskID(ctx context.Context, orderID string, taskID string) error {
	return nil
}

func (f *fakeRepo) FindStalePendingOrders(ctx context.Context, createdBefore time.Time) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeRepo) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeRepo) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	return nil, nil
}

func (f *fakeRepo) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	return "", nil
}

func (f *fakeRepo) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	return nil
}
