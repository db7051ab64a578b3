package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
)

const (
	ticketSeqPrefix = "ticket:seq:"
	ticketSeqTTL    = 48 * time.Hour
)

// TicketNumberGenerator issues TB-YYYYMMDD-NNNN numbers from a per-day Redis counter.
type TicketNumberGenerator struct {
	client *redis.Client
	now    func() time.Time
}

func NewTicketNumberGenerator(client *redis.Client) *TicketNumberGenerator {
	return &TicketNumberGenerator{client: client, now: time.Now}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	day := g.now().In(biztime.Location())
	key := ticketSeqPrefix + day.Format("20060102")

	pipe := g.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ticketSeqTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to allocate ticket number: %w", err)
	}
	return ticket.FormatNumber(day, incr.Val()), nil
}
