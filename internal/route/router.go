package router

import (
	bookingHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/handler"
	catalogHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/handler"
	draftHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/handler"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Catalog *catalogHandler.CatalogHandler
	Booking *bookingHandler.BookingHandler
	Draft   *draftHandler.DraftHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Get("/activities", h.Catalog.ListActivities)
	v1.Get("/activities/:id/facilities", h.Catalog.ListFacilities)
	v1.Get("/facilities/:id/slots", h.Catalog.AvailableSlots)

	v1.Post("/checkout", m.Identify, h.Booking.CreateCheckout)
	v1.Get("/checkout/success", h.Booking.CheckoutSuccess)
	v1.Post("/payments/webhook", h.Booking.PaymentWebhook)

	v1.Get("/bookings", m.ValidateToken, h.Booking.ShowBookings)
	v1.Post("/bookings", m.ValidateToken, h.Booking.CreateBooking)

	drafts := v1.Group("/drafts", m.Identify)
	drafts.Post("", h.Draft.Start)
	drafts.Get("/:id", h.Draft.Get)
	drafts.Delete("/:id", h.Draft.Discard)
	drafts.Post("/:id/activity", h.Draft.SelectActivity)
	drafts.Post("/:id/facility", h.Draft.SelectFacility)
	drafts.Post("/:id/date", h.Draft.SelectDate)
	drafts.Post("/:id/slots/toggle", h.Draft.ToggleSlot)
	drafts.Post("/:id/slots/confirm", h.Draft.ConfirmSlots)
	drafts.Post("/:id/submit", h.Draft.Submit)
	drafts.Post("/:id/back", h.Draft.Back)

	private := Api.Group("/private", m.ValidatePrivateKey)
	private.Get("/orders/pending", h.Booking.ListStalePendingOrders)

	return app

}
