package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/shared/goroutine"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

const handlerTimeout = 30 * time.Second

// InMemoryEventDispatcher fans events out to subscribed handlers on a
// background worker. Handler failures are logged and never reach the publisher.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	tasks    *goroutine.Group
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		tasks:    goroutine.NewGroup(log),
		logger:   log,
	}
}

// Publish enqueues event without blocking. A full buffer is an error.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.loop()
	}()
	return nil
}

// Stop drains queued events and waits for the worker and in-flight handlers.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	d.tasks.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) loop() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.dispatch(event)
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.GetEventType()]...)
	d.mu.RUnlock()

	for _, h := range handlers {
		h := h
		d.tasks.Go("event:"+event.GetEventType(), handlerTimeout, func(ctx context.Context) error {
			if err := h.Handle(ctx, event); err != nil {
				return fmt.Errorf("handler for aggregate %d: %w", event.GetAggregateID(), err)
			}
			return nil
		})
	}
}
