package errors_test

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("wrapped custom error", func(t *testing.T) {
		err := fmt.Errorf("reconcile: %w", errors.OrderNotFound("order not found"))

		assert.True(t, errors.HasCode(err, errors.CodeOrderNotFound))
		assert.False(t, errors.HasCode(err, errors.CodeInvalidRequest))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, errors.HasCode(goerrors.New("boom"), errors.CodeInternalServerError))
	})
}

func TestHttpCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid request", err: errors.InvalidRequest("missing field"), want: http.StatusBadRequest},
		{name: "slot unavailable", err: errors.SlotUnavailable("taken"), want: http.StatusConflict},
		{name: "payment provider", err: errors.PaymentProviderError("down"), want: http.StatusBadGateway},
		{name: "order persistence", err: errors.OrderPersistenceError("db"), want: http.StatusInternalServerError},
		{name: "order not found", err: errors.OrderNotFound("nope"), want: http.StatusNotFound},
		{name: "payment mismatch", err: errors.PaymentMismatch("amount"), want: http.StatusConflict},
		{name: "booking conflict", err: errors.BookingConflict("taken"), want: http.StatusConflict},
		{name: "unknown", err: goerrors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.HttpCode(tc.err))
		})
	}
}
