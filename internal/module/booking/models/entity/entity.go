package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusConflict = "conflict" // paid after its slots were booked, needs a refund

	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Order correlates a payment session with everything needed to create the booking later.
type Order struct {
	ID              string         `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	FacilityID      string         `db:"facility_id"`
	StripeSessionID string         `db:"stripe_session_id"`
	BookingDate     time.Time      `db:"booking_date"`
	StartTime       string         `db:"start_time"`
	EndTime         string         `db:"end_time"`
	SelectedSlots   pq.StringArray `db:"selected_slots"`
	Amount          int64          `db:"amount"`
	Currency        string         `db:"currency"`
	CustomerEmail   string         `db:"customer_email"`
	CustomerPhone   string         `db:"customer_phone"`
	ActivityName    string         `db:"activity_name"`
	FacilityName    string         `db:"facility_name"`
	Status          string         `db:"status"`
	TaskID          sql.NullString `db:"task_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type Booking struct {
	ID            string         `db:"id"`
	UserID        sql.NullString `db:"user_id"`
	FacilityID    string         `db:"facility_id"`
	OrderID       sql.NullString `db:"order_id"`
	BookingDate   time.Time      `db:"booking_date"`
	StartTime     string         `db:"start_time"`
	EndTime       string         `db:"end_time"`
	TotalAmount   int64          `db:"total_amount"`
	CustomerEmail string         `db:"customer_email"`
	CustomerPhone string         `db:"customer_phone"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// BookingFromOrder builds the confirmed booking a paid order turns into.
func BookingFromOrder(o Order) Booking {
	return Booking{
		UserID:        o.UserID,
		FacilityID:    o.FacilityID,
		OrderID:       sql.NullString{String: o.ID, Valid: true},
		BookingDate:   o.BookingDate,
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		TotalAmount:   o.Amount,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Status:        BookingStatusConfirmed,
	}
}
