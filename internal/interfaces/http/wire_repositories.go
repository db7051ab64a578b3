package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/domain/booking"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/cache"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/repository"
	"github.com/tradesbook-ie/tradesbook/internal/shared/config"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// repositories holds the repository instances used by the application.
type repositories struct {
	bookingRepo  booking.Repository
	proposalRepo negotiation.Repository
	photoRepo    photo.Repository
	ticketRepo   ticket.Repository
	ticketNumber ticket.NumberGenerator
}

func newRepositories(db *gorm.DB, redisClient *redis.Client, cacheCfg *config.CacheConfig, log logger.Interface) *repositories {
	repos := &repositories{
		bookingRepo:  repository.NewBookingRepository(db),
		proposalRepo: repository.NewProposalRepository(db),
		photoRepo:    repository.NewPhotoRepository(db),
		ticketRepo:   repository.NewTicketRepository(db),
		ticketNumber: cache.NewTicketNumberGenerator(redisClient),
	}

	if cacheCfg.Enabled {
		repos.proposalRepo = cache.NewCachedProposalRepository(repos.proposalRepo, redisClient, cacheCfg.TTL(), log)
		repos.photoRepo = cache.NewCachedPhotoRepository(repos.photoRepo, redisClient, cacheCfg.TTL(), log)
		log.Infow("proposal and photo progress caches enabled", "ttl", cacheCfg.TTL())
	}

	return repos
}
