package messagestream

import (
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// NewRouter wires one consumer with retries, and parks messages that still fail on poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic string, handlerName string, subscribeTopic string, subscriber message.Subscriber, handlerFunc func(msg *message.Message) error, maxRetries int) (*message.Router, error) {
	logger := NewZapLoggerAdapter()

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      maxRetries,
			InitialInterval: time.Millisecond * 200,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, subscribeTopic, subscriber, handlerFunc)

	return router, nil
}
