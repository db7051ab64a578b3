package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// MessagePublisher delivers a payload to the broker under a routing key.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Envelope is the broker message body.
type Envelope struct {
	EventType   string          `json:"event_type"`
	AggregateID uint            `json:"aggregate_id"`
	OccurredAt  string          `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// EventRelay forwards committed domain events to the broker, routed by event type.
type EventRelay struct {
	publisher MessagePublisher
	logger    logger.Interface
}

func NewEventRelay(publisher MessagePublisher, logger logger.Interface) *EventRelay {
	return &EventRelay{publisher: publisher, logger: logger}
}

func (r *EventRelay) Handle(ctx context.Context, event events.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.GetEventType(), err)
	}
	body, err := json.Marshal(Envelope{
		EventType:   event.GetEventType(),
		AggregateID: event.GetAggregateID(),
		OccurredAt:  event.GetOccurredAt().UTC().Format(time.RFC3339Nano),
		Payload:     payload,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if err := r.publisher.Publish(ctx, event.GetEventType(), body); err != nil {
		return fmt.Errorf("relay %s: %w", event.GetEventType(), err)
	}
	r.logger.Debugw("event relayed", "event_type", event.GetEventType(), "aggregate_id", event.GetAggregateID())
	return nil
}
