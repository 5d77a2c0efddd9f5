package payment

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"

	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"

	EventCheckoutSessionCompleted             = "checkout.session.completed"
	EventCheckoutSessionAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
)

// Provider is the subset of the payment provider the booking flow depends on.
type Provider interface {
	// FindCustomerByEmail returns "" when no customer matches.
	FindCustomerByEmail(ctx context.Context, email string) (string, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
	ConstructEvent(payload []byte, signature string) (Event, error)
}

type CheckoutSessionParams struct {
	CustomerID     string
	CustomerEmail  string
	ProductName    string
	Description    string
	UnitAmount     int64
	Currency       string
	SuccessURL     string
	CancelURL      string
	Metadata       map[string]string
	ExpiresAt      time.Time
	IdempotencyKey string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// Session decodes the event payload for checkout.session.* events.
func (e Event) Session() (CheckoutSession, error) {
	var s CheckoutSession
	err := json.Unmarshal(e.Data.Object, &s)
	return s, err
}
