package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

type testEvent struct {
	BaseEvent
}

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.Nop())

	var (
		mu  sync.Mutex
		got []uint
		wg  sync.WaitGroup
	)
	wg.Add(2)
	handler := HandlerFunc(func(ctx context.Context, e DomainEvent) error {
		defer wg.Done()
		mu.Lock()
		got = append(got, e.GetAggregateID())
		mu.Unlock()
		return nil
	})
	require.NoError(t, d.Subscribe("booking.scheduled", handler))
	require.NoError(t, d.Start())
	defer d.Stop()

	require.NoError(t, d.PublishAll([]DomainEvent{
		testEvent{NewBaseEvent(1, "booking.scheduled")},
		testEvent{NewBaseEvent(2, "booking.scheduled")},
		testEvent{NewBaseEvent(3, "ignored")},
	}))

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []uint{1, 2}, got)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.Nop())
	called := make(chan struct{}, 1)

	require.NoError(t, d.Subscribe("x", HandlerFunc(func(context.Context, DomainEvent) error {
		return errors.New("smtp down")
	})))
	require.NoError(t, d.Subscribe("x", HandlerFunc(func(context.Context, DomainEvent) error {
		called <- struct{}{}
		return nil
	})))
	require.NoError(t, d.Start())
	defer d.Stop()

	require.NoError(t, d.Publish(testEvent{NewBaseEvent(7, "x")}))
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler not invoked")
	}
}

func TestDispatcher_PublishBeforeStart(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.Nop())
	assert.Error(t, d.Publish(testEvent{NewBaseEvent(1, "x")}))
	assert.Error(t, d.Subscribe("", HandlerFunc(nil)))
}
