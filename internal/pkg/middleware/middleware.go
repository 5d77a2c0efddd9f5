package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/auth"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/errors"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log        *otelzap.Logger
	Auth       auth.Provider
	PrivateKey string
}

func bearer(ctx *fiber.Ctx) string {
	header := ctx.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (m *Middleware) setIdentity(ctx *fiber.Ctx, token string) error {
	identity, err := m.Auth.CurrentUser(token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return errors.UnauthorizedError("error validate token")
	}

	ctx.Locals("user_id", identity.UserID)
	ctx.Locals("email_user", identity.Email)
	return nil
}

// Identify stamps the caller on the request when a token is sent. Guests pass through.
func (m *Middleware) Identify(ctx *fiber.Ctx) error {
	token := bearer(ctx)
	if token == "" {
		return ctx.Next()
	}

	if err := m.setIdentity(ctx, token); err != nil {
		return helpers.RespError(ctx, m.Log, err)
	}

	return ctx.Next()
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token := bearer(ctx)
	if token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	if err := m.setIdentity(ctx, token); err != nil {
		return helpers.RespError(ctx, m.Log, err)
	}

	return ctx.Next()
}

// ValidatePrivateKey guards operator endpoints.
func (m *Middleware) ValidatePrivateKey(ctx *fiber.Ctx) error {
	key := ctx.Get("X-Api-Key")
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.PrivateKey)) != 1 {
		m.Log.Ctx(ctx.UserContext()).Error("error validate private key")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate private key"))
	}

	return ctx.Next()
}
