package main

import (
	"context"
	"log"

	"github.com/GLCRealm/cyber-lane-reservations/config"
	bookingHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/handler"
	bookingRepositories "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/repositories"
	bookingUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/booking/usecases"
	catalogHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/handler"
	catalogRepositories "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/repositories"
	catalogUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/catalog/usecases"
	draftHandler "github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/handler"
	draftRepositories "github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/repositories"
	draftUsecases "github.com/GLCRealm/cyber-lane-reservations/internal/module/draft/usecases"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/auth"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/database"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/http"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/httpclient"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/locker"
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/messagestream"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/middleware"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/notifier"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/payment"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/redis"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/scheduler"
	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/timeslot"
	router "github.com/GLCRealm/cyber-lane-reservations/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.GetOtelLogger()
	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	lock := locker.New(redisClient, cfg.Booking.LockExpiry, cfg.Booking.LockTries, logger)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	provider := payment.NewStripe(&cfg.Payment, httpClient, logger)

	grid, err := timeslot.NewGrid(cfg.Booking.SlotFirst, cfg.Booking.SlotLast, cfg.Booking.SlotStep)
	if err != nil {
		log.Fatalf("invalid slot grid: %v", err)
	}

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sch := scheduler.Scheduler{Log: logger}
	schedulerClient := sch.InitClient(&cfg.Redis)
	inspector := sch.InitInspector(&cfg.Redis)

	validate := validator.New()

	catalogRepo := catalogRepositories.New(db, logger)
	catalogUsecase := catalogUsecases.New(catalogRepo, grid, cfg.Booking.HoldTTL, logger)

	bookingRepo := bookingRepositories.New(db, logger, schedulerClient, inspector)
	bookingUsecase := bookingUsecases.New(
		bookingRepo,
		catalogUsecase,
		provider,
		lock,
		publisher,
		notifier.NewPublisher(publisher, messagestream.TopicNotification, logger),
		validate,
		grid,
		cfg,
		logger,
	)

	draftRepo := draftRepositories.New(redisClient, cfg.Booking.DraftTTL, logger)
	draftUsecase := draftUsecases.New(draftRepo, catalogUsecase, bookingUsecase, lock, logger)

	handlers := router.Handlers{
		Catalog: &catalogHandler.CatalogHandler{
			Log:     otelLogger,
			Usecase: catalogUsecase,
		},
		Booking: &bookingHandler.BookingHandler{
			Log:           otelLogger,
			Validator:     validate,
			Usecase:       bookingUsecase,
			Publish:       publisher,
			DefaultOrigin: cfg.Payment.DefaultOrigin,
		},
		Draft: &draftHandler.DraftHandler{
			Log:           otelLogger,
			Validator:     validate,
			Usecase:       draftUsecase,
			DefaultOrigin: cfg.Payment.DefaultOrigin,
		},
	}

	m := middleware.Middleware{
		Log:        otelLogger,
		Auth:       auth.New(&cfg.Auth),
		PrivateKey: cfg.App.PrivateKey,
	}

	// scheduler workers and dashboard
	go sch.StartHandler(
		&cfg.Redis,
		cfg.Scheduler.Concurrency,
		[]string{scheduler.TypeVerifyOrderPayment},
		[]func(ctx context.Context, t *asynq.Task) error{handlers.Booking.VerifyOrderPayment},
	)
	go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)

	var messageRouters []*message.Router

	paymentCompletedRouter, err := messagestream.NewRouter(
		publisher,
		messagestream.TopicPoisonedQueue,
		"payment_completed_handler",
		messagestream.TopicPaymentCompleted,
		subscriber,
		handlers.Booking.ConsumePaymentCompleted,
		cfg.MessageStream.MaxRetries,
	)
	if err != nil {
		logger.Error(ctx, "Failed to create payment_completed router", err)
	} else {
		messageRouters = append(messageRouters, paymentCompletedRouter)
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, handlers, &m)

	return r, messageRouters

}
