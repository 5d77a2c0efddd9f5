package notifier

import (
	"context"
	"fmt"

	"github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

// Notifier delivers fire-and-forget messages to a customer.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

type Message struct {
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	EmailRecipient string `json:"email_recipient" validate:"required"`
}

type publisherNotifier struct {
	publisher message.Publisher
	topic     string
	log       log.Logger
}

// NewPublisher hands notifications to the notification service over the broker.
func NewPublisher(publisher message.Publisher, topic string, log log.Logger) Notifier {
	return &publisherNotifier{
		publisher: publisher,
		topic:     topic,
		log:       log,
	}
}

func (n *publisherNotifier) Notify(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	m := message.NewMessage(watermill.NewUUID(), payload)
	m.SetContext(ctx)
	if err := n.publisher.Publish(n.topic, m); err != nil {
		n.log.Error(ctx, fmt.Sprintf("error publish notification to %s: %v", msg.EmailRecipient, err))
		return err
	}

	return nil
}

type nop struct{}

func Nop() Notifier {
	return nop{}
}

func (nop) Notify(context.Context, Message) error {
	return nil
}
