package events

import (
	"context"
	"time"
)

// DomainEvent is something that happened to an aggregate.
type DomainEvent interface {
	GetAggregateID() uint
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent carries the fields common to every event.
type BaseEvent struct {
	AggregateID uint      `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBaseEvent(aggregateID uint, eventType string) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) GetAggregateID() uint     { return e.AggregateID }
func (e BaseEvent) GetEventType() string     { return e.EventType }
func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler reacts to one event type.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event DomainEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event DomainEvent) error {
	return f(ctx, event)
}

// EventPublisher is what use cases depend on after a successful commit.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

type EventDispatcher interface {
	EventPublisher
	Subscribe(eventType string, handler EventHandler) error
	Start() error
	Stop() error
}
