package payment_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/config"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/payment"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) payment.Provider {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.PaymentConfig{
		SecretKey:        "sk_test_123",
		WebhookSecret:    "whsec_123",
		BaseURL:          srv.URL,
		Currency:         "inr",
		WebhookTolerance: 5 * time.Minute,
	}
	client := circuit.NewHTTPClient(5*time.Second, 5, srv.Client())

	return payment.NewStripe(cfg, client, log_internal.Nop())
}

func TestFindCustomerByEmail(t *testing.T) {
	t.Run("customer exists", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/customers", r.URL.Path)
			assert.Equal(t, "g@x.com", r.URL.Query().Get("email"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"data":[{"id":"cus_1"}]}`)
		})

		id, err := p.FindCustomerByEmail(context.Background(), "g@x.com")

		assert.NoError(t, err)
		assert.Equal(t, "cus_1", id)
	})

	t.Run("no customer", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[]}`)
		})

		id, err := p.FindCustomerByEmail(context.Background(), "g@x.com")

		assert.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("provider error", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"Invalid API Key"}}`)
		})

		_, err := p.FindCustomerByEmail(context.Background(), "g@x.com")

		assert.ErrorContains(t, err, "Invalid API Key")
	})
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var form url.Values
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "order-key", r.Header.Get("Idempotency-Key"))
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			_, _ = io.WriteString(w, `{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1","status":"open","payment_status":"unpaid"}`)
		})

		session, err := p.CreateCheckoutSession(context.Background(), payment.CheckoutSessionParams{
			CustomerEmail:  "g@x.com",
			ProductName:    "PC Gaming - Rig 1",
			Description:    "Gaming session on 2030-01-01 from 05:00 PM to 05:30 PM",
			UnitAmount:     100000,
			Currency:       "inr",
			SuccessURL:     "http://localhost:3000/booking-success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:      "http://localhost:3000/booking",
			Metadata:       map[string]string{"facilityId": "f1"},
			IdempotencyKey: "order-key",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_1", session.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
		assert.Equal(t, "g@x.com", form.Get("customer_email"))
		assert.Empty(t, form.Get("customer"))
		assert.Equal(t, "payment", form.Get("mode"))
		assert.Equal(t, "100000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "inr", form.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "PC Gaming - Rig 1", form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "f1", form.Get("metadata[facilityId]"))
		assert.Equal(t, "http://localhost:3000/booking-success?session_id={CHECKOUT_SESSION_ID}", form.Get("success_url"))
	})

	t.Run("existing customer", func(t *testing.T) {
		var form url.Values
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			form = r.PostForm
			_, _ = io.WriteString(w, `{"id":"cs_test_2","url":"https://checkout.stripe.com/c/pay/cs_test_2"}`)
		})

		_, err := p.CreateCheckoutSession(context.Background(), payment.CheckoutSessionParams{
			CustomerID:    "cus_1",
			CustomerEmail: "g@x.com",
			UnitAmount:    50000,
			Currency:      "inr",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cus_1", form.Get("customer"))
		assert.Empty(t, form.Get("customer_email"))
	})

	t.Run("incomplete session", func(t *testing.T) {
		p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id":"cs_test_3"}`)
		})

		_, err := p.CreateCheckoutSession(context.Background(), payment.CheckoutSessionParams{UnitAmount: 1, Currency: "inr"})

		assert.Error(t, err)
	})
}

func TestRetrieveCheckoutSession(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":"cs_test_1","status":"complete","payment_status":"paid","amount_total":100000,"currency":"inr"}`)
	})

	session, err := p.RetrieveCheckoutSession(context.Background(), "cs_test_1")

	assert.NoError(t, err)
	assert.Equal(t, payment.PaymentStatusPaid, session.PaymentStatus)
	assert.Equal(t, int64(100000), session.AmountTotal)
}
