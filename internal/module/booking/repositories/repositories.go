package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/scheduler"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db        *sqlx.DB
	log       log.Logger
	scheduler *asynq.Client
	inspector *asynq.Inspector
}

type Repositories interface {
	// db
	InsertOrder(ctx context.Context, order entity.Order) (string, error)
	FindOrderBySessionID(ctx context.Context, sessionID string) (entity.Order, error)
	// ConfirmOrder moves a pending order to paid and creates its booking in one transaction.
	// It reports false when the order was no longer pending.
	ConfirmOrder(ctx context.Context, order entity.Order) (bool, error)
	UpdateOrderTaskID(ctx context.Context, orderID string, taskID string) error
	FindStalePendingOrders(ctx context.Context, createdBefore time.Time) ([]entity.Order, error)
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log log.Logger, scheduler *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:        db,
		log:       log,
		scheduler: scheduler,
		inspector: inspector,
	}
}

const (
	orderColumns   = `id, user_id, facility_id, stripe_session_id, booking_date, start_time, end_time, selected_slots, amount, currency, customer_email, customer_phone, activity_name, facility_name, status, task_id, created_at, updated_at`
	bookingColumns = `id, user_id, facility_id, order_id, booking_date, start_time, end_time, total_amount, customer_email, customer_phone, status, created_at, updated_at`
)

// InsertOrder implements Repositories.
func (r *repositories) InsertOrder(ctx context.Context, order entity.Order) (string, error) {
	query := `INSERT INTO orders (user_id, facility_id, stripe_session_id, booking_date, start_time, end_time, selected_slots, amount, currency, customer_email, customer_phone, activity_name, facility_name, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`

	var id string
	err := r.db.QueryRowxContext(ctx, query,
		order.UserID, order.FacilityID, order.StripeSessionID, order.BookingDate, order.StartTime, order.EndTime,
		order.SelectedSlots, order.Amount, order.Currency, order.CustomerEmail, order.CustomerPhone,
		order.ActivityName, order.FacilityName, order.Status,
	).Scan(&id)
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error insert order for session %s: %v", order.StripeSessionID, err))
		return "", errors.InternalServerError("error insert order")
	}

	return id, nil
}

// FindOrderBySessionID implements Repositories.
func (r *repositories) FindOrderBySessionID(ctx context.Context, sessionID string) (entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE stripe_session_id = $1`

	var order entity.Order
	err := r.db.GetContext(ctx, &order, query, sessionID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return entity.Order{}, errors.OrderNotFound("order not found")
	}
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find order by session %s: %v", sessionID, err))
		return entity.Order{}, errors.InternalServerError("error find order by session id")
	}

	return order, nil
}

// ConfirmOrder implements Repositories.
func (r *repositories) ConfirmOrder(ctx context.Context, order entity.Order) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}

	// confirmations of one facility and day run one at a time
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, order.FacilityID+":"+order.BookingDate.Format(helpers.DateLayout)); err != nil {
		tx.Rollback()
		r.log.Error(ctx, fmt.Sprintf("error lock bookings of facility %s: %v", order.FacilityID, err))
		return false, errors.InternalServerError("error lock bookings")
	}

	// the status guard makes concurrent confirmations race on the row lock, only one sees a pending row
	res, err := tx.ExecContext(ctx, `UPDATE orders SET status = 'paid', updated_at = NOW() WHERE id = $1 AND status = 'pending'`, order.ID)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, fmt.Sprintf("error mark order %s paid: %v", order.ID, err))
		return false, errors.InternalServerError("error update order status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, errors.InternalServerError("error read affected rows")
	}
	if affected != 1 {
		tx.Rollback()
		return false, nil
	}

	booked := []timeslot.Range{}
	err = tx.SelectContext(ctx, &booked, `SELECT start_time, end_time FROM bookings WHERE facility_id = $1 AND booking_date = $2 AND status = 'confirmed'`, order.FacilityID, order.BookingDate)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, fmt.Sprintf("error find bookings overlapping order %s: %v", order.ID, err))
		return false, errors.InternalServerError("error find booked ranges")
	}

	if taken := timeslot.Overlapping(booked, order.SelectedSlots); len(taken) > 0 {
		if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = 'conflict', updated_at = NOW() WHERE id = $1`, order.ID); err != nil {
			tx.Rollback()
			return false, errors.InternalServerError("error update order status")
		}
		if err := tx.Commit(); err != nil {
			return false, errors.InternalServerError("error committing transaction")
		}
		return false, errors.BookingConflict(fmt.Sprintf("time slots already booked: %s", strings.Join(taken, ", ")))
	}

	booking := entity.BookingFromOrder(order)
	_, err = tx.ExecContext(ctx, `INSERT INTO bookings (user_id, facility_id, order_id, booking_date, start_time, end_time, total_amount, customer_email, customer_phone, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		booking.UserID, booking.FacilityID, booking.OrderID, booking.BookingDate, booking.StartTime, booking.EndTime,
		booking.TotalAmount, booking.CustomerEmail, booking.CustomerPhone, booking.Status,
	)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, fmt.Sprintf("error insert booking for order %s: %v", order.ID, err))
		return false, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}

	return true, nil
}

// UpdateOrderTaskID implements Repositories.
func (r *repositories) UpdateOrderTaskID(ctx context.Context, orderID string, taskID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET task_id = $1, updated_at = NOW() WHERE id = $2`, taskID, orderID)
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error update task id of order %s: %v", orderID, err))
		return errors.InternalServerError("error update order task id")
	}
	return nil
}

// FindStalePendingOrders implements Repositories.
func (r *repositories) FindStalePendingOrders(ctx context.Context, createdBefore time.Time) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = 'pending' AND created_at < $1 ORDER BY created_at`

	orders := []entity.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, createdBefore); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find stale pending orders: %v", err))
		return nil, errors.InternalServerError("error find stale pending orders")
	}
	return orders, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	query := `INSERT INTO bookings (user_id, facility_id, order_id, booking_date, start_time, end_time, total_amount, customer_email, customer_phone, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		booking.UserID, booking.FacilityID, booking.OrderID, booking.BookingDate, booking.StartTime, booking.EndTime,
		booking.TotalAmount, booking.CustomerEmail, booking.CustomerPhone, booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error insert booking: %v", err))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}

	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error find bookings of user %s: %v", userID, err))
		return nil, errors.InternalServerError("error find booking by user id")
	}
	return bookings, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeVerifyOrderPayment, payload)
	info, err := r.scheduler.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.MaxRetry(5))
	if err != nil {
		r.log.Error(ctx, fmt.Sprintf("error enqueue %s task: %v", scheduler.TypeVerifyOrderPayment, err))
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		return errors.InternalServerError(fmt.Sprintf("error delete task %s: %v", taskID, err))
	}
	return nil
}
