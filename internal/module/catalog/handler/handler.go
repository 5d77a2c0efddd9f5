package handler

import (
	"fmt"
	"time"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CatalogHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *CatalogHandler) ListActivities(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListActivities(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list activities: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list activities")
}

func (h *CatalogHandler) ListFacilities(ctx *fiber.Ctx) error {
	activityID := ctx.Params("id")

	resp, err := h.Usecase.ListFacilities(ctx.UserContext(), activityID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list facilities: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list facilities")
}

func (h *CatalogHandler) AvailableSlots(ctx *fiber.Ctx) error {
	facilityID := ctx.Params("id")
	date := ctx.Query("date")

	if _, err := time.Parse(helpers.DateLayout, date); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse date %q: %v", date, err))
		return helpers.RespError(ctx, h.Log, errors.InvalidRequest("date must be YYYY-MM-DD"))
	}

	if helpers.IsPastDate(date) {
		return helpers.RespError(ctx, h.Log, errors.InvalidRequest("booking date is in the past"))
	}

	resp, err := h.Usecase.AvailableSlots(ctx.UserContext(), facilityID, date)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error available slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success available slots")
}
