package response

type Checkout struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
	OrderID   string `json:"orderId"`
}

type OrderDetails struct {
	ID            string   `json:"id"`
	SessionID     string   `json:"session_id"`
	FacilityID    string   `json:"facility_id"`
	ActivityName  string   `json:"activity_name"`
	FacilityName  string   `json:"facility_name"`
	BookingDate   string   `json:"booking_date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	SelectedSlots []string `json:"selected_slots"`
	Amount        int64    `json:"amount"`
	Currency      string   `json:"currency"`
	CustomerEmail string   `json:"customer_email"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
}

type Booking struct {
	ID            string `json:"id"`
	FacilityID    string `json:"facility_id"`
	BookingDate   string `json:"booking_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TotalAmount   int64  `json:"total_amount"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
