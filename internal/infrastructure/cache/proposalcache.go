package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

const proposalListPrefix = "negotiation:proposals:"

// CachedProposalRepository keeps each booking's proposal list in Redis.
// Every write through it drops the booking's entry, again after commit when
// it runs inside a transaction. Reads inside a transaction bypass the cache.
type CachedProposalRepository struct {
	negotiation.Repository
	client *redis.Client
	mapper mappers.ProposalMapper
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedProposalRepository(inner negotiation.Repository, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedProposalRepository {
	return &CachedProposalRepository{
		Repository: inner,
		client:     client,
		mapper:     mappers.NewProposalMapper(),
		ttl:        ttl,
		logger:     logger,
	}
}

func (c *CachedProposalRepository) key(bookingID uint) string {
	return fmt.Sprintf("%s%d", proposalListPrefix, bookingID)
}

func (c *CachedProposalRepository) ListByBooking(ctx context.Context, bookingID uint) ([]*negotiation.ScheduleProposal, error) {
	if db.InTransaction(ctx) {
		return c.Repository.ListByBooking(ctx, bookingID)
	}

	raw, err := c.client.Get(ctx, c.key(bookingID)).Bytes()
	switch {
	case err == nil:
		var cached []models.ScheduleProposalModel
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			if list, mapErr := c.mapper.ToDomainList(cached); mapErr == nil {
				return list, nil
			}
		}
		c.logger.Warnw("discarding unreadable proposal cache entry", "booking_id", bookingID)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("proposal cache read failed", "booking_id", bookingID, "error", err)
	}

	list, err := c.Repository.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.ScheduleProposalModel, 0, len(list))
	for _, p := range list {
		rows = append(rows, c.mapper.ToModel(p))
	}
	if data, err := json.Marshal(rows); err == nil {
		if err := c.client.Set(ctx, c.key(bookingID), data, c.ttl).Err(); err != nil {
			c.logger.Warnw("proposal cache write failed", "booking_id", bookingID, "error", err)
		}
	}
	return list, nil
}

func (c *CachedProposalRepository) Create(ctx context.Context, p *negotiation.ScheduleProposal) error {
	if err := c.Repository.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p.BookingID())
	return nil
}

func (c *CachedProposalRepository) Update(ctx context.Context, p *negotiation.ScheduleProposal) error {
	if err := c.Repository.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx, p.BookingID())
	return nil
}

func (c *CachedProposalRepository) Delete(ctx context.Context, id uint) error {
	p, err := c.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.Repository.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, p.BookingID())
	return nil
}

func (c *CachedProposalRepository) invalidate(ctx context.Context, bookingID uint) {
	c.drop(ctx, bookingID)
	// A reader may refill the entry from pre-commit rows before the commit lands.
	db.AfterCommit(ctx, func() { c.drop(context.WithoutCancel(ctx), bookingID) })
}

func (c *CachedProposalRepository) drop(ctx context.Context, bookingID uint) {
	if err := c.client.Del(ctx, c.key(bookingID)).Err(); err != nil {
		c.logger.Warnw("proposal cache invalidation failed", "booking_id", bookingID, "error", err)
	}
}
