package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"tastybites/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Mailer Mailer
}

func NewConsumer(reader *kafka.Reader, mailer Mailer) *Consumer {
	return &Consumer{Reader: reader, Mailer: mailer}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order notification consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventStatusChange {
			c.ProcessEvent(ctx, event)
		}
	}
}

// ProcessEvent sends at most one email per event. Delivery is best-effort:
// failures are logged and the event is dropped, never retried.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Email == "" {
		return
	}
	log.Printf("Dispatching status email: OrderID=%d, Status=%s", event.OrderID, event.Status)

	if err := c.Mailer.SendStatusEmail(ctx, event.Email, event.OrderID, event.Status); err != nil {
		log.Printf("Error sending status email for order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("Successfully notified order %d", event.OrderID)
}
