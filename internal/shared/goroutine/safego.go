// Package goroutine runs background tasks whose failures are logged instead of
// propagated to the caller.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// Task is background work bounded by the context it is given.
type Task func(ctx context.Context) error

// Group runs tasks and lets shutdown wait for the ones still in flight.
type Group struct {
	wg  sync.WaitGroup
	log logger.Interface
}

func NewGroup(log logger.Interface) *Group {
	return &Group{log: log}
}

// Go runs task in its own goroutine with a fresh context limited by timeout.
// A returned error or a panic is logged under name.
func (g *Group) Go(name string, timeout time.Duration, task Task) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				g.log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := task(ctx); err != nil {
			g.log.Errorw("background task failed", "task", name, "error", err)
		}
	}()
}

// Wait blocks until every task started with Go has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
