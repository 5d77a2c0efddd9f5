package messagestream

import (
	"fmt"

	"github.com/GLCRealm/cyber-lane-reservations/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
)

const (
	TopicPaymentCompleted  = "payment_completed"
	TopicBookingConfirmed  = "booking_confirmed"
	TopicNotification      = "notification"
	TopicPoisonedQueue     = "poisoned_queue"
	HandlerPaymentComplete = "payment_completed_handler"
)

type Amqp struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	return &Amqp{
		cfg:    amqp.NewDurableQueueConfig(uri),
		logger: NewZapLoggerAdapter(),
	}
}

func (a *Amqp) NewSubscriber() (*amqp.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Amqp) NewPublisher() (*amqp.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

func (a *Amqp) Logger() watermill.LoggerAdapter {
	return a.logger
}
