package handler

import (
	"fmt"

	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/entity"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/request"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/models/response"
	"github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type DraftHandler struct {
	Log           *otelzap.Logger
	Validator     *validator.Validate
	Usecase       usecases.Usecase
	DefaultOrigin string
}

func (h *DraftHandler) respond(ctx *fiber.Ctx, draft *entity.Draft, err error, action string) error {
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error %s: %v", action, err))
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, response.FromEntity(draft), "success "+action)
}

// parse decodes and validates the body into req.
func (h *DraftHandler) parse(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.InvalidRequest("error parse request")
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.InvalidRequest(err.Error())
	}
	return nil
}

func (h *DraftHandler) Start(ctx *fiber.Ctx) error {
	draft, err := h.Usecase.Start(ctx.UserContext())
	return h.respond(ctx, draft, err, "start draft")
}

func (h *DraftHandler) Get(ctx *fiber.Ctx) error {
	draft, err := h.Usecase.Get(ctx.UserContext(), ctx.Params("id"))
	return h.respond(ctx, draft, err, "get draft")
}

func (h *DraftHandler) SelectActivity(ctx *fiber.Ctx) error {
	var req request.SelectActivity
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	draft, err := h.Usecase.SelectActivity(ctx.UserContext(), ctx.Params("id"), &req)
	return h.respond(ctx, draft, err, "select activity")
}

func (h *DraftHandler) SelectFacility(ctx *fiber.Ctx) error {
	var req request.SelectFacility
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	draft, err := h.Usecase.SelectFacility(ctx.UserContext(), ctx.Params("id"), &req)
	return h.respond(ctx, draft, err, "select facility")
}

func (h *DraftHandler) SelectDate(ctx *fiber.Ctx) error {
	var req request.SelectDate
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	draft, err := h.Usecase.SelectDate(ctx.UserContext(), ctx.Params("id"), &req)
	return h.respond(ctx, draft, err, "select date")
}

func (h *DraftHandler) ToggleSlot(ctx *fiber.Ctx) error {
	var req request.ToggleSlot
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	draft, err := h.Usecase.ToggleSlot(ctx.UserContext(), ctx.Params("id"), &req)
	return h.respond(ctx, draft, err, "toggle slot")
}

func (h *DraftHandler) ConfirmSlots(ctx *fiber.Ctx) error {
	draft, err := h.Usecase.ConfirmSlots(ctx.UserContext(), ctx.Params("id"))
	return h.respond(ctx, draft, err, "confirm slots")
}

func (h *DraftHandler) Submit(ctx *fiber.Ctx) error {
	var req request.Contact
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	userID, _ := ctx.Locals("user_id").(string)
	origin := ctx.Get(fiber.HeaderOrigin)
	if origin == "" {
		origin = h.DefaultOrigin
	}

	draft, err := h.Usecase.Submit(ctx.UserContext(), ctx.Params("id"), &req, userID, origin)
	return h.respond(ctx, draft, err, "submit draft")
}

func (h *DraftHandler) Back(ctx *fiber.Ctx) error {
	draft, err := h.Usecase.Back(ctx.UserContext(), ctx.Params("id"))
	return h.respond(ctx, draft, err, "go back")
}

func (h *DraftHandler) Discard(ctx *fiber.Ctx) error {
	if err := h.Usecase.Discard(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error discard draft: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "success discard draft")
}
