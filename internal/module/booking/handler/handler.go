package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/models/request"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const defaultStaleWindow = time.Hour

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
	// DefaultOrigin builds redirect urls for callers that send no Origin header
	DefaultOrigin string
}

func (h *BookingHandler) CreateCheckout(ctx *fiber.Ctx) error {
	var req request.Booking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InvalidRequest("error parse request"))
	}

	userID, _ := ctx.Locals("user_id").(string)

	origin := ctx.Get(fiber.HeaderOrigin)
	if origin == "" {
		origin = h.DefaultOrigin
	}

	resp, err := h.Usecase.CreateCheckout(ctx.UserContext(), &req, userID, origin)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create checkout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespJSON(ctx, h.Log, http.StatusOK, resp)
}

func (h *BookingHandler) CheckoutSuccess(ctx *fiber.Ctx) error {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		return helpers.RespError(ctx, h.Log, errors.InvalidRequest("invalid session"))
	}

	resp, err := h.Usecase.Reconcile(ctx.UserContext(), sessionID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reconcile session %s: %v", sessionID, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking confirmed")
}

func (h *BookingHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	signature := ctx.Get("Stripe-Signature")

	// fiber reuses the body buffer after the handler returns
	payload := append([]byte(nil), ctx.Body()...)

	if err := h.Usecase.HandleWebhook(ctx.UserContext(), payload, signature); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle payment webhook: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "received")
}

func (h *BookingHandler) ConsumePaymentCompleted(msg *message.Message) error {
	var req request.PaymentCompleted
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return nil
	}

	// retried by the router, then moved to the poison queue
	if err := h.Usecase.ConsumePaymentCompleted(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume payment completed: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: messagestream.TopicPaymentCompleted,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish(messagestream.TopicPoisonedQueue, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *BookingHandler) VerifyOrderPayment(ctx context.Context, t *asynq.Task) error {
	var req request.VerifyOrderPayment
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.VerifyOrderPayment(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error verify order payment: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.Booking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InvalidRequest("error parse request"))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ListStalePendingOrders(ctx *fiber.Ctx) error {
	olderThan := defaultStaleWindow
	if raw := ctx.Query("older_than"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse older_than: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("older_than must be a duration such as 45m or 2h"))
		}
		olderThan = d
	}

	resp, err := h.Usecase.ListStalePendingOrders(ctx.UserContext(), olderThan)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list stale pending orders: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list stale pending orders")
}
