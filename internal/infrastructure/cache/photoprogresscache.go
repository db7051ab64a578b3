package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/mappers"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	db "github.com/tradesbook-ie/tradesbook/internal/shared/db"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

const photoProgressPrefix = "photo:progress:"

// CachedPhotoRepository keeps each booking's progress rows in Redis.
// Sessions are not cached. Reads inside a transaction bypass the cache and
// writes drop the entry again after commit.
type CachedPhotoRepository struct {
	photo.Repository
	client *redis.Client
	mapper mappers.PhotoMapper
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedPhotoRepository(inner photo.Repository, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedPhotoRepository {
	return &CachedPhotoRepository{
		Repository: inner,
		client:     client,
		mapper:     mappers.NewPhotoMapper(),
		ttl:        ttl,
		logger:     logger,
	}
}

func (c *CachedPhotoRepository) key(bookingID uint) string {
	return fmt.Sprintf("%s%d", photoProgressPrefix, bookingID)
}

func (c *CachedPhotoRepository) ListProgress(ctx context.Context, bookingID uint) ([]*photo.Progress, error) {
	if db.InTransaction(ctx) {
		return c.Repository.ListProgress(ctx, bookingID)
	}
	if list, ok := c.read(ctx, bookingID); ok {
		return list, nil
	}

	list, err := c.Repository.ListProgress(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.PhotoProgressModel, 0, len(list))
	for _, p := range list {
		rows = append(rows, c.mapper.ProgressToModel(p))
	}
	if data, err := json.Marshal(rows); err == nil {
		if err := c.client.Set(ctx, c.key(bookingID), data, c.ttl).Err(); err != nil {
			c.logger.Warnw("photo progress cache write failed", "booking_id", bookingID, "error", err)
		}
	}
	return list, nil
}

func (c *CachedPhotoRepository) read(ctx context.Context, bookingID uint) ([]*photo.Progress, bool) {
	raw, err := c.client.Get(ctx, c.key(bookingID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("photo progress cache read failed", "booking_id", bookingID, "error", err)
		}
		return nil, false
	}

	var rows []models.PhotoProgressModel
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.logger.Warnw("discarding unreadable photo progress cache entry", "booking_id", bookingID)
		return nil, false
	}
	list := make([]*photo.Progress, 0, len(rows))
	for i := range rows {
		p, err := c.mapper.ProgressToDomain(&rows[i])
		if err != nil {
			return nil, false
		}
		list = append(list, p)
	}
	return list, true
}

func (c *CachedPhotoRepository) UpsertProgress(ctx context.Context, p *photo.Progress) error {
	if err := c.Repository.UpsertProgress(ctx, p); err != nil {
		return err
	}
	bookingID := p.BookingID()
	c.drop(ctx, bookingID)
	db.AfterCommit(ctx, func() { c.drop(context.WithoutCancel(ctx), bookingID) })
	return nil
}

func (c *CachedPhotoRepository) drop(ctx context.Context, bookingID uint) {
	if err := c.client.Del(ctx, c.key(bookingID)).Err(); err != nil {
		c.logger.Warnw("photo progress cache invalidation failed", "booking_id", bookingID, "error", err)
	}
}
