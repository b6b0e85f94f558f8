// Package notify delivers order confirmations. Delivery is fire-and-forget:
// callers log failures and never surface them to the shopper.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"stylehive/internal/models"
)

// EventOrderConfirmed is the event type published for a verified order.
const EventOrderConfirmed = "order.confirmed"

// Notifier sends the confirmation for a completed order.
type Notifier interface {
	SendConfirmation(ctx context.Context, order models.Order) error
}

// Publisher is a message broker producer.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// Event is the broker message carrying a confirmed order.
type Event struct {
	Type  string       `json:"type"`
	Order models.Order `json:"order"`
}

// DecodeEvent parses a broker message body.
func DecodeEvent(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, fmt.Errorf("failed to decode order event: %w", err)
	}
	return ev, nil
}

// LogNotifier writes the rendered confirmation email to the log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendConfirmation(ctx context.Context, order models.Order) error {
	n.logger.InfoContext(ctx, "confirmation email sent",
		"order_id", order.ID,
		"to", order.UserEmail,
		"body", RenderConfirmation(order),
	)
	return nil
}

// BrokerNotifier publishes confirmations to a message broker.
type BrokerNotifier struct {
	publisher Publisher
}

func NewBrokerNotifier(publisher Publisher) *BrokerNotifier {
	return &BrokerNotifier{publisher: publisher}
}

func (n *BrokerNotifier) SendConfirmation(ctx context.Context, order models.Order) error {
	body, err := json.Marshal(Event{Type: EventOrderConfirmed, Order: order})
	if err != nil {
		return fmt.Errorf("failed to encode order %s: %w", order.ID, err)
	}
	if err := n.publisher.Publish(ctx, EventOrderConfirmed, body); err != nil {
		return fmt.Errorf("failed to publish confirmation for order %s: %w", order.ID, err)
	}
	return nil
}

// Deliver decodes a broker message and hands its order to mailer. Events of
// other types are skipped.
func Deliver(ctx context.Context, mailer Notifier, body []byte) error {
	ev, err := DecodeEvent(body)
	if err != nil {
		return err
	}
	if ev.Type != EventOrderConfirmed {
		return nil
	}
	return mailer.SendConfirmation(ctx, ev.Order)
}
