package helpers

import (
	"fmt"
	"net/http"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespJSON(ctx, log, http.StatusOK, Response{
		Message: message,
		Data:    data,
	})
}

// RespJSON writes body as is, without the message/data envelope.
func RespJSON(ctx *fiber.Ctx, log *otelzap.Logger, status int, body interface{}) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error write response: %v", err))
		return err
	}
	return nil
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.HttpCode(err)
	if status >= http.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("request failed: %v", err))
	}

	return RespJSON(ctx, log, status, ErrorResponse{
		Error: err.Error(),
		Code:  errors.Code(err),
	})
}
