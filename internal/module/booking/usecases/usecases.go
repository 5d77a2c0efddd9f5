package usecases

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/config"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/request"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/response"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/repositories"
	catalogUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/locker"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/messagestream"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/notifier"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/payment"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.elastic.co/apm"
)

const guestUserID = "guest"

type usecase struct {
	repo      repositories.Repositories
	catalog   catalogUsecases.Usecase
	provider  payment.Provider
	locker    locker.Locker
	publisher message.Publisher
	notifier  notifier.Notifier
	validate  *validator.Validate
	grid      timeslot.Grid
	cfg       *config.Config
	log       log.Logger
}

type Usecase interface {
	// http
	CreateCheckout(ctx context.Context, payload *request.Booking, userID string, origin string) (response.Checkout, error)
	Reconcile(ctx context.Context, sessionID string) (response.OrderDetails, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	CreateBooking(ctx context.Context, payload *request.Booking, userID string) (response.Booking, error)
	ShowBookings(ctx context.Context, userID string) ([]response.Booking, error)
	ListStalePendingOrders(ctx context.Context, olderThan time.Duration) ([]response.OrderDetails, error)
	// consumer
	ConsumePaymentCompleted(ctx context.Context, payload *request.PaymentCompleted) error
	// scheduler
	VerifyOrderPayment(ctx context.Context, payload *request.VerifyOrderPayment) error
}

func New(
	repo repositories.Repositories,
	catalog catalogUsecases.Usecase,
	provider payment.Provider,
	locker locker.Locker,
	publisher message.Publisher,
	notifier notifier.Notifier,
	validate *validator.Validate,
	grid timeslot.Grid,
	cfg *config.Config,
	log log.Logger,
) Usecase {
	return &usecase{
		repo:      repo,
		catalog:   catalog,
		provider:  provider,
		locker:    locker,
		publisher: publisher,
		notifier:  notifier,
		validate:  validate,
		grid:      grid,
		cfg:       cfg,
		log:       log,
	}
}

// quote is a booking request checked against the catalog and priced on the server.
type quote struct {
	facilityName string
	activityName string
	date         time.Time
	slots        []string
	start        string
	end          string
	amount       int64
}

func (u *usecase) CreateCheckout(ctx context.Context, payload *request.Booking, userID string, origin string) (response.Checkout, error) {
	q, err := u.quote(ctx, payload)
	if err != nil {
		return response.Checkout{}, err
	}

	unlock, err := u.locker.Lock(ctx, slotLockKey(payload.FacilityID, payload.BookingDate))
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error lock slots of facility %s: %v", payload.FacilityID, err))
		return response.Checkout{}, errors.InternalServerError("error lock time slots")
	}
	defer unlock()

	if err := u.ensureAvailable(ctx, payload.FacilityID, payload.BookingDate, q.slots); err != nil {
		return response.Checkout{}, err
	}

	customerID, err := u.provider.FindCustomerByEmail(ctx, payload.CustomerEmail)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error find payment customer: %v", err))
		return response.Checkout{}, errors.PaymentProviderError("payment provider unavailable, please try again")
	}

	metadataUser := userID
	if metadataUser == "" {
		metadataUser = guestUserID
	}

	session, err := u.provider.CreateCheckoutSession(ctx, payment.CheckoutSessionParams{
		CustomerID:    customerID,
		CustomerEmail: payload.CustomerEmail,
		ProductName:   fmt.Sprintf("%s - %s", q.activityName, q.facilityName),
		Description:   fmt.Sprintf("Gaming session on %s from %s to %s", payload.BookingDate, q.start, q.end),
		UnitAmount:    q.amount,
		Currency:      u.cfg.Payment.Currency,
		SuccessURL:    fmt.Sprintf("%s/booking-success?session_id={CHECKOUT_SESSION_ID}", origin),
		CancelURL:     fmt.Sprintf("%s/booking", origin),
		Metadata: map[string]string{
			"facilityId":    payload.FacilityID,
			"bookingDate":   payload.BookingDate,
			"startTime":     q.start,
			"endTime":       q.end,
			"customerEmail": payload.CustomerEmail,
			"customerPhone": payload.CustomerPhone,
			"userId":        metadataUser,
		},
		ExpiresAt:      time.Now().Add(u.cfg.Booking.CheckoutHoldTTL()),
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error create checkout session: %v", err))
		return response.Checkout{}, errors.PaymentProviderError("payment provider unavailable, please try again")
	}

	order := entity.Order{
		UserID:          nullString(userID),
		FacilityID:      payload.FacilityID,
		StripeSessionID: session.ID,
		BookingDate:     q.date,
		StartTime:       q.start,
		EndTime:         q.end,
		SelectedSlots:   pq.StringArray(q.slots),
		Amount:          q.amount,
		Currency:        u.cfg.Payment.Currency,
		CustomerEmail:   payload.CustomerEmail,
		CustomerPhone:   payload.CustomerPhone,
		ActivityName:    q.activityName,
		FacilityName:    q.facilityName,
		Status:          entity.OrderStatusPending,
	}

	orderID, err := u.repo.InsertOrder(ctx, order)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("payment session %s has no order: %v", session.ID, err))
		return response.Checkout{}, errors.OrderPersistenceError("failed to save the order, please contact support before retrying")
	}

	u.scheduleVerification(ctx, orderID, session.ID)

	return response.Checkout{
		URL:       session.URL,
		SessionID: session.ID,
		OrderID:   orderID,
	}, nil
}

func (u *usecase) quote(ctx context.Context, payload *request.Booking) (quote, error) {
	if err := u.validate.Struct(payload); err != nil {
		return quote{}, errors.InvalidRequest(invalidFields(err))
	}

	date, err := time.Parse(helpers.DateLayout, payload.BookingDate)
	if err != nil {
		return quote{}, errors.InvalidRequest(fmt.Sprintf("invalid booking date %q", payload.BookingDate))
	}
	if helpers.IsPastDate(payload.BookingDate) {
		return quote{}, errors.InvalidRequest("booking date is in the past")
	}

	facility, err := u.catalog.GetFacility(ctx, payload.FacilityID)
	if errors.HasCode(err, errors.CodeNotFound) {
		return quote{}, errors.InvalidRequest("facility not found")
	}
	if err != nil {
		return quote{}, err
	}
	if !facility.IsAvailable {
		return quote{}, errors.InvalidRequest("facility is not available")
	}

	activity, err := u.catalog.GetActivity(ctx, facility.ActivityID)
	if err != nil {
		return quote{}, err
	}

	slots := make([]string, 0, len(payload.SelectedSlots))
	for _, label := range payload.SelectedSlots {
		normalized, err := u.grid.Normalize(label)
		if err != nil {
			return quote{}, errors.InvalidRequest(err.Error())
		}
		slots = append(slots, normalized)
	}

	start, end, err := u.grid.Span(slots)
	if err != nil {
		return quote{}, errors.InvalidRequest(err.Error())
	}

	amount := timeslot.Amount(len(slots), activity.HourlyRate)
	if payload.TotalAmount != amount {
		return quote{}, errors.InvalidRequest(fmt.Sprintf("total amount %d does not match %d slots at %d", payload.TotalAmount, len(slots), activity.HourlyRate))
	}

	return quote{
		facilityName: facility.Name,
		activityName: activity.Name,
		date:         date,
		slots:        slots,
		start:        start,
		end:          end,
		amount:       amount,
	}, nil
}

func (u *usecase) ensureAvailable(ctx context.Context, facilityID, date string, slots []string) error {
	availability, err := u.catalog.AvailableSlots(ctx, facilityID, date)
	if err != nil {
		return err
	}

	free := make(map[string]bool, len(availability.Slots))
	for _, slot := range availability.Slots {
		free[slot.Label] = slot.Available
	}

	var taken []string
	for _, label := range slots {
		if !free[label] {
			taken = append(taken, label)
		}
	}
	if len(taken) > 0 {
		return errors.SlotUnavailable(fmt.Sprintf("time slots no longer available: %s", strings.Join(taken, ", ")))
	}

	return nil
}

// scheduleVerification queues a late payment check for sessions whose webhook and redirect both got lost.
func (u *usecase) scheduleVerification(ctx context.Context, orderID, sessionID string) {
	payload, err := json.Marshal(request.VerifyOrderPayment{OrderID: orderID, SessionID: sessionID})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error marshal verify payment payload: %v", err))
		return
	}

	taskID, err := u.repo.SetTaskScheduler(ctx, time.Now().Add(u.cfg.Booking.PaymentCheckDelay), payload)
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("order %s has no payment verification task: %v", orderID, err))
		return
	}

	if err := u.repo.UpdateOrderTaskID(ctx, orderID, taskID); err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error store task id of order %s: %v", orderID, err))
	}
}

func (u *usecase) Reconcile(ctx context.Context, sessionID string) (response.OrderDetails, error) {
	if sessionID == "" {
		return response.OrderDetails{}, errors.InvalidRequest("invalid session")
	}

	span, ctx := apm.StartSpan(ctx, "booking.reconcile", "app")
	defer span.End()

	order, err := u.repo.FindOrderBySessionID(ctx, sessionID)
	if err != nil {
		return response.OrderDetails{}, err
	}

	if order.Status == entity.OrderStatusPending {
		session, err := u.provider.RetrieveCheckoutSession(ctx, sessionID)
		if err != nil {
			u.log.Error(ctx, fmt.Sprintf("error retrieve checkout session %s: %v", sessionID, err))
			return response.OrderDetails{}, errors.PaymentProviderError("could not verify payment, please try again")
		}
		if session.PaymentStatus != payment.PaymentStatusPaid {
			return response.OrderDetails{}, errors.PaymentNotCompleted("payment has not been completed")
		}
		if session.AmountTotal != order.Amount || !strings.EqualFold(session.Currency, order.Currency) {
			u.log.Error(ctx, fmt.Sprintf("session %s charged %d %s, order %s expects %d %s",
				sessionID, session.AmountTotal, session.Currency, order.ID, order.Amount, order.Currency))
			return response.OrderDetails{}, errors.PaymentMismatch("payment does not match the order")
		}

		created, err := u.repo.ConfirmOrder(ctx, order)
		if errors.HasCode(err, errors.CodeBookingConflict) {
			u.log.Error(ctx, fmt.Sprintf("order %s is paid but its slots are booked, refund session %s", order.ID, sessionID))
			return response.OrderDetails{}, err
		}
		if err != nil {
			return response.OrderDetails{}, err
		}

		if created {
			u.afterConfirm(ctx, order)
		}

		order, err = u.repo.FindOrderBySessionID(ctx, sessionID)
		if err != nil {
			return response.OrderDetails{}, err
		}
	}

	return orderDetails(order), nil
}

// afterConfirm runs the side effects of a new booking; failures are logged only.
func (u *usecase) afterConfirm(ctx context.Context, order entity.Order) {
	u.log.Info(ctx, fmt.Sprintf("booking confirmed for order %s", order.ID))

	if order.TaskID.Valid {
		if err := u.repo.DeleteTaskScheduler(ctx, order.TaskID.String); err != nil {
			u.log.Debug(ctx, fmt.Sprintf("verification task of order %s not removed: %v", order.ID, err))
		}
	}

	event := request.BookingConfirmed{
		OrderID:       order.ID,
		SessionID:     order.StripeSessionID,
		UserID:        order.UserID.String,
		FacilityID:    order.FacilityID,
		FacilityName:  order.FacilityName,
		ActivityName:  order.ActivityName,
		BookingDate:   order.BookingDate.Format(helpers.DateLayout),
		StartTime:     order.StartTime,
		EndTime:       order.EndTime,
		Slots:         order.SelectedSlots,
		TotalAmount:   order.Amount,
		Currency:      order.Currency,
		CustomerEmail: order.CustomerEmail,
		ConfirmedAt:   time.Now().Format(time.RFC3339),
	}
	if payload, err := json.Marshal(event); err == nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.SetContext(ctx)
		if err := u.publisher.Publish(messagestream.TopicBookingConfirmed, msg); err != nil {
			u.log.Error(ctx, fmt.Sprintf("error publish booking confirmed for order %s: %v", order.ID, err))
		}
	}

	err := u.notifier.Notify(ctx, notifier.Message{
		Subject: "Your gaming session is booked",
		Message: fmt.Sprintf("%s at %s on %s from %s to %s is confirmed.",
			order.ActivityName, order.FacilityName, event.BookingDate, order.StartTime, order.EndTime),
		EmailRecipient: order.CustomerEmail,
	})
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error notify customer of order %s: %v", order.ID, err))
	}
}

func (u *usecase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := u.provider.ConstructEvent(payload, signature)
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("rejected webhook: %v", err))
		return errors.BadRequest("invalid webhook signature")
	}

	if event.Type != payment.EventCheckoutSessionCompleted && event.Type != payment.EventCheckoutSessionAsyncPaymentSucceeded {
		u.log.Debug(ctx, fmt.Sprintf("ignored webhook event %s of type %s", event.ID, event.Type))
		return nil
	}

	session, err := event.Session()
	if err != nil {
		return errors.BadRequest("invalid checkout session payload")
	}
	if session.PaymentStatus != payment.PaymentStatusPaid {
		return nil
	}

	body, err := json.Marshal(request.PaymentCompleted{SessionID: session.ID, EventID: event.ID})
	if err != nil {
		return errors.InternalServerError("error marshal payment completed")
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	if err := u.publisher.Publish(messagestream.TopicPaymentCompleted, msg); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish payment completed for session %s: %v", session.ID, err))
		return errors.InternalServerError("error publish payment completed")
	}

	return nil
}

func (u *usecase) ConsumePaymentCompleted(ctx context.Context, payload *request.PaymentCompleted) error {
	_, err := u.Reconcile(ctx, payload.SessionID)
	switch {
	case errors.HasCode(err, errors.CodeOrderNotFound):
		// session was not created by this service
		u.log.Warn(ctx, fmt.Sprintf("payment completed for unknown session %s", payload.SessionID))
		return nil
	case needsOperator(err):
		return nil
	}
	return err
}

// needsOperator reports errors that retrying cannot fix.
func needsOperator(err error) bool {
	return errors.HasCode(err, errors.CodeBookingConflict) || errors.HasCode(err, errors.CodePaymentMismatch)
}

func (u *usecase) VerifyOrderPayment(ctx context.Context, payload *request.VerifyOrderPayment) error {
	details, err := u.Reconcile(ctx, payload.SessionID)
	switch {
	case err == nil:
		u.log.Debug(ctx, fmt.Sprintf("order %s verified with status %s", payload.OrderID, details.Status))
		return nil
	case errors.HasCode(err, errors.CodePaymentNotCompleted), errors.HasCode(err, errors.CodeOrderNotFound):
		// expired or abandoned, the stale listing reports it
		u.log.Info(ctx, fmt.Sprintf("order %s left unpaid: %v", payload.OrderID, err))
		return nil
	case needsOperator(err):
		return nil
	default:
		return err
	}
}

// CreateBooking confirms a booking without a payment session, the venue collects payment on site.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.Booking, userID string) (response.Booking, error) {
	if !u.cfg.Booking.PayLaterEnabled {
		return response.Booking{}, errors.BadRequest("pay later bookings are disabled")
	}

	q, err := u.quote(ctx, payload)
	if err != nil {
		return response.Booking{}, err
	}

	unlock, err := u.locker.Lock(ctx, slotLockKey(payload.FacilityID, payload.BookingDate))
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error lock slots of facility %s: %v", payload.FacilityID, err))
		return response.Booking{}, errors.InternalServerError("error lock time slots")
	}
	defer unlock()

	if err := u.ensureAvailable(ctx, payload.FacilityID, payload.BookingDate, q.slots); err != nil {
		return response.Booking{}, err
	}

	booking, err := u.repo.InsertBooking(ctx, entity.Booking{
		UserID:        nullString(userID),
		FacilityID:    payload.FacilityID,
		BookingDate:   q.date,
		StartTime:     q.start,
		EndTime:       q.end,
		TotalAmount:   q.amount,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		Status:        entity.BookingStatusConfirmed,
	})
	if err != nil {
		return response.Booking{}, err
	}

	return bookingResponse(booking), nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID string) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, bookingResponse(b))
	}
	return resp, nil
}

func (u *usecase) ListStalePendingOrders(ctx context.Context, olderThan time.Duration) ([]response.OrderDetails, error) {
	if olderThan <= 0 {
		return nil, errors.BadRequest("older_than must be positive")
	}

	orders, err := u.repo.FindStalePendingOrders(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return nil, err
	}

	resp := make([]response.OrderDetails, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderDetails(o))
	}
	return resp, nil
}

func slotLockKey(facilityID, date string) string {
	return fmt.Sprintf("slots:%s:%s", facilityID, date)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func invalidFields(err error) string {
	var ve validator.ValidationErrors
	if !goerrors.As(err, &ve) {
		return "invalid booking request"
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(fields, ", "))
}

func orderDetails(o entity.Order) response.OrderDetails {
	return response.OrderDetails{
		ID:            o.ID,
		SessionID:     o.StripeSessionID,
		FacilityID:    o.FacilityID,
		ActivityName:  o.ActivityName,
		FacilityName:  o.FacilityName,
		BookingDate:   o.BookingDate.Format(helpers.DateLayout),
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		SelectedSlots: o.SelectedSlots,
		Amount:        o.Amount,
		Currency:      o.Currency,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func bookingResponse(b entity.Booking) response.Booking {
	return response.Booking{
		ID:            b.ID,
		FacilityID:    b.FacilityID,
		BookingDate:   b.BookingDate.Format(helpers.DateLayout),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalAmount:   b.TotalAmount,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
