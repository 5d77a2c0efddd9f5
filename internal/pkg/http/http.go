package http

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.elastic.co/apm"
)

const AllowedHeaders = "authorization, x-client-info, apikey, content-type, stripe-signature, x-api-key"

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: AllowedHeaders,
	}))
	app.Use(apmTransaction)

	return app
}

// apmTransaction opens one APM transaction per request and hands it down via the user context.
func apmTransaction(c *fiber.Ctx) error {
	tx := apm.DefaultTracer.StartTransaction(fmt.Sprintf("%s %s", c.Method(), c.Path()), "request")
	defer tx.End()

	c.SetUserContext(apm.ContextWithTransaction(c.UserContext(), tx))

	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		apm.CaptureError(c.UserContext(), err).Send()
	}
	tx.Result = fmt.Sprintf("HTTP %dxx", status/100)
	tx.Context.SetHTTPStatusCode(status)

	return err
}

func StartHttpServer(app *fiber.App, port string, shutdownTimeout time.Duration) {
	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
			log.Fatalf("error start http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("error shutdown http server: %v", err)
	}
}
