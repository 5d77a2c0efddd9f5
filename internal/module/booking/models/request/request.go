package request

// Booking is the checkout payload, field names follow the web client.
type Booking struct {
	FacilityID    string   `json:"facilityId" validate:"required"`
	ActivityName  string   `json:"activityName" validate:"required"`
	FacilityName  string   `json:"facilityName" validate:"required"`
	BookingDate   string   `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"startTime" validate:"required"`
	EndTime       string   `json:"endTime" validate:"required"`
	SelectedSlots []string `json:"selectedSlots" validate:"required,min=1,dive,required"`
	TotalAmount   int64    `json:"totalAmount" validate:"required,gt=0"`
	CustomerEmail string   `json:"customerEmail" validate:"required,contains=@"`
	CustomerPhone string   `json:"customerPhone" validate:"required"`
}

type PaymentCompleted struct {
	SessionID string `json:"session_id" validate:"required"`
	EventID   string `json:"event_id"`
}

type VerifyOrderPayment struct {
	OrderID   string `json:"order_id" validate:"required"`
	SessionID string `json:"session_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type BookingConfirmed struct {
	OrderID       string   `json:"order_id"`
	SessionID     string   `json:"session_id"`
	UserID        string   `json:"user_id,omitempty"`
	FacilityID    string   `json:"facility_id"`
	FacilityName  string   `json:"facility_name"`
	ActivityName  string   `json:"activity_name"`
	BookingDate   string   `json:"booking_date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Slots         []string `json:"slots"`
	TotalAmount   int64    `json:"total_amount"`
	Currency      string   `json:"currency"`
	CustomerEmail string   `json:"customer_email"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
