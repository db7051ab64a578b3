package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/auth"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/config"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/messaging"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/permission"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
	"github.com/tradesbook-ie/tradesbook/internal/shared/db"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

const eventBufferSize = 256

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	txManager  *db.TransactionManager
	dispatcher *events.InMemoryEventDispatcher
	jwtSvc     *auth.JWTService
	enforcer   *permission.Enforcer

	// nil unless messaging is enabled
	broker *messaging.RabbitMQPublisher

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

// NewContainer builds the object graph. The event dispatcher is started here
// and stopped by Shutdown.
func NewContainer(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	// Section 1: Infrastructure - transactions, events, auth, middlewares
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories, with read-through caches when enabled
	c.repos = newRepositories(gdb, redisClient, &cfg.Cache, log)

	// Section 3: Use cases and handlers
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	// Section 4: Event subscribers - email notifications and broker relay
	if err := c.initSubscribers(); err != nil {
		return nil, err
	}

	if err := c.dispatcher.Start(); err != nil {
		return nil, err
	}
	return c, nil
}
