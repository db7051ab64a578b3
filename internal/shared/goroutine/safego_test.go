package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func TestGroup_WaitsForTasks(t *testing.T) {
	g := NewGroup(logger.Nop())
	var done atomic.Int32

	for i := 0; i < 3; i++ {
		g.Go("sleep", time.Second, func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			done.Add(1)
			return nil
		})
	}
	g.Wait()

	assert.Equal(t, int32(3), done.Load())
}

func TestGroup_SurvivesPanicsAndErrors(t *testing.T) {
	g := NewGroup(logger.Nop())

	g.Go("panics", time.Second, func(ctx context.Context) error {
		panic("boom")
	})
	g.Go("fails", time.Second, func(ctx context.Context) error {
		return errors.New("failed")
	})

	assert.NotPanics(t, g.Wait)
}

func TestGroup_TaskContextHasDeadline(t *testing.T) {
	g := NewGroup(logger.Nop())
	var hasDeadline atomic.Bool

	g.Go("deadline", 50*time.Millisecond, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hasDeadline.Store(ok)
		<-ctx.Done()
		return ctx.Err()
	})
	g.Wait()

	assert.True(t, hasDeadline.Load())
}
