package http

import (
	"fmt"
	"time"

	"github.com/tradesbook-ie/tradesbook/internal/application/notification"
	"github.com/tradesbook-ie/tradesbook/internal/domain/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/domain/photo"
	"github.com/tradesbook-ie/tradesbook/internal/domain/shared/events"
	"github.com/tradesbook-ie/tradesbook/internal/domain/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/auth"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/email"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/messaging"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/permission"
	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/ratelimit"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
	"github.com/tradesbook-ie/tradesbook/internal/shared/db"
	"github.com/tradesbook-ie/tradesbook/internal/shared/services/markdown"
)

// relayedEventTypes are forwarded to the message broker when messaging is enabled.
var relayedEventTypes = []string{
	negotiation.EventTypeProposalCreated,
	negotiation.EventTypeProposalAccepted,
	negotiation.EventTypeProposalRejected,
	negotiation.EventTypeProposalDeleted,
	photo.EventTypePhotosSubmitted,
	ticket.EventTypeTicketCreated,
	ticket.EventTypeTicketReplied,
}

// ============================================================
// Section 1: Infrastructure
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.txManager = db.NewTransactionManager(c.db)
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log.Named("events"))
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)
	if cfg.RateLimit.Enabled {
		limit := ratelimit.Limit{
			Requests: cfg.RateLimit.Requests,
			Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		}
		c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(c.redis), limit, log)
	}
	return nil
}

// ============================================================
// Section 4: Event subscribers
// ============================================================

func (c *Container) initSubscribers() error {
	cfg := c.cfg
	log := c.log

	var sender notification.EmailSender
	if cfg.Email.Enabled {
		sender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	} else {
		log.Infow("email disabled, ticket reply notifications will only be logged")
		sender = email.NewLogEmailService(log)
	}

	notifier := notification.NewTicketReplyNotifier(sender, markdown.NewRenderer(), cfg.Email.SupportURL, log.Named("notifier"))
	if err := c.dispatcher.Subscribe(ticket.EventTypeTicketReplied, notifier); err != nil {
		return fmt.Errorf("failed to subscribe ticket reply notifier: %w", err)
	}

	if !cfg.Messaging.Enabled {
		return nil
	}

	c.broker = messaging.NewRabbitMQPublisher(messaging.Config{
		URL:      cfg.Messaging.URL,
		Queue:    cfg.Messaging.Queue,
		Exchange: cfg.Messaging.Exchange,
	}, log.Named("messaging"))

	relay := notification.NewEventRelay(c.broker, log.Named("relay"))
	for _, eventType := range relayedEventTypes {
		if err := c.dispatcher.Subscribe(eventType, relay); err != nil {
			return fmt.Errorf("failed to subscribe event relay to %s: %w", eventType, err)
		}
	}
	log.Infow("domain events relayed to message broker", "queue", cfg.Messaging.Queue, "exchange", cfg.Messaging.Exchange)
	return nil
}
