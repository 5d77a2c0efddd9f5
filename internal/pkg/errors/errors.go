package errors

import (
	goerrors "errors"
	"net/http"
)

const (
	CodeBadRequest            = "BAD_REQUEST"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeInternalServerError   = "INTERNAL_SERVER_ERROR"
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeSlotUnavailable       = "SLOT_UNAVAILABLE"
	CodePaymentProviderError  = "PAYMENT_PROVIDER_ERROR"
	CodeOrderPersistenceError = "ORDER_PERSISTENCE_ERROR"
	CodeOrderNotFound         = "ORDER_NOT_FOUND"
	CodePaymentNotCompleted   = "PAYMENT_NOT_COMPLETED"
	CodeIllegalTransition     = "ILLEGAL_TRANSITION"
	CodePaymentMismatch       = "PAYMENT_MISMATCH"
	CodeBookingConflict       = "BOOKING_CONFLICT"
)

type CustomError struct {
	HttpCode int
	Code     string
	Message  string
}

func (e CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return CustomError{HttpCode: http.StatusBadRequest, Code: CodeBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{HttpCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return CustomError{HttpCode: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

func Conflict(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodeConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return CustomError{HttpCode: http.StatusInternalServerError, Code: CodeInternalServerError, Message: msg}
}

// InvalidRequest is a user-correctable problem with booking input.
func InvalidRequest(msg string) error {
	return CustomError{HttpCode: http.StatusBadRequest, Code: CodeInvalidRequest, Message: msg}
}

func SlotUnavailable(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodeSlotUnavailable, Message: msg}
}

// PaymentProviderError is retryable, nothing was persisted.
func PaymentProviderError(msg string) error {
	return CustomError{HttpCode: http.StatusBadGateway, Code: CodePaymentProviderError, Message: msg}
}

// OrderPersistenceError means a provider session exists without an order row.
func OrderPersistenceError(msg string) error {
	return CustomError{HttpCode: http.StatusInternalServerError, Code: CodeOrderPersistenceError, Message: msg}
}

func OrderNotFound(msg string) error {
	return CustomError{HttpCode: http.StatusNotFound, Code: CodeOrderNotFound, Message: msg}
}

func PaymentNotCompleted(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodePaymentNotCompleted, Message: msg}
}

func IllegalTransition(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodeIllegalTransition, Message: msg}
}

// PaymentMismatch means the provider charged an amount or currency the order does not carry.
func PaymentMismatch(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodePaymentMismatch, Message: msg}
}

// BookingConflict means a paid order lost its slots to another booking and needs a refund.
func BookingConflict(msg string) error {
	return CustomError{HttpCode: http.StatusConflict, Code: CodeBookingConflict, Message: msg}
}

// HasCode reports whether err is a CustomError carrying code.
func HasCode(err error, code string) bool {
	var ce CustomError
	if goerrors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// HttpCode falls back to 500 for errors that are not a CustomError.
func HttpCode(err error) int {
	var ce CustomError
	if goerrors.As(err, &ce) && ce.HttpCode != 0 {
		return ce.HttpCode
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	var ce CustomError
	if goerrors.As(err, &ce) {
		return ce.Code
	}
	return CodeInternalServerError
}
