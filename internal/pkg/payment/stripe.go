package payment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/config"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm"
)

type stripe struct {
	cfg        *config.PaymentConfig
	httpClient *circuit.HTTPClient
	log        log.Logger
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type customerList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// NewStripe talks to the Stripe REST API through the circuit breaker client.
func NewStripe(cfg *config.PaymentConfig, httpClient *circuit.HTTPClient, log log.Logger) Provider {
	return &stripe{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log,
	}
}

func (s *stripe) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	span, ctx := apm.StartSpan(ctx, "stripe.customers.list", "external.stripe")
	defer span.End()

	query := url.Values{}
	query.Set("email", email)
	query.Set("limit", "1")

	var list customerList
	if err := s.do(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, "", &list); err != nil {
		return "", err
	}

	if len(list.Data) == 0 {
		return "", nil
	}
	return list.Data[0].ID, nil
}

func (s *stripe) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (CheckoutSession, error) {
	span, ctx := apm.StartSpan(ctx, "stripe.checkout.sessions.create", "external.stripe")
	defer span.End()

	form := url.Values{}
	if params.CustomerID != "" {
		form.Set("customer", params.CustomerID)
	} else {
		form.Set("customer_email", params.CustomerEmail)
	}
	form.Set("mode", "payment")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.UnitAmount, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.Description != "" {
		form.Set("line_items[0][price_data][product_data][description]", params.Description)
	}
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if !params.ExpiresAt.IsZero() {
		form.Set("expires_at", strconv.FormatInt(params.ExpiresAt.Unix(), 10))
	}
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var session CheckoutSession
	if err := s.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, params.IdempotencyKey, &session); err != nil {
		return CheckoutSession{}, err
	}
	if session.ID == "" || session.URL == "" {
		return CheckoutSession{}, fmt.Errorf("stripe returned an incomplete checkout session")
	}

	return session, nil
}

func (s *stripe) RetrieveCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error) {
	span, ctx := apm.StartSpan(ctx, "stripe.checkout.sessions.retrieve", "external.stripe")
	defer span.End()

	var session CheckoutSession
	if err := s.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, "", &session); err != nil {
		return CheckoutSession{}, err
	}
	return session, nil
}

func (s *stripe) ConstructEvent(payload []byte, signature string) (Event, error) {
	if err := VerifySignature(payload, signature, s.cfg.WebhookSecret, s.cfg.WebhookTolerance, time.Now()); err != nil {
		return Event{}, err
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, fmt.Errorf("decode webhook event: %w", err)
	}
	return event, nil
}

func (s *stripe) do(ctx context.Context, method, path string, form url.Values, idempotencyKey string, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(s.cfg.BaseURL, "/")+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.SecretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read stripe response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var se stripeError
		_ = json.Unmarshal(raw, &se)
		s.log.Error(ctx, fmt.Sprintf("stripe %s %s failed with status %d: %s", method, path, resp.StatusCode, se.Error.Message))
		return fmt.Errorf("stripe %s %s: status %d: %s", method, path, resp.StatusCode, se.Error.Message)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode stripe response: %w", err)
	}
	return nil
}
