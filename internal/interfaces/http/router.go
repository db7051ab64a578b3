package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/routes"
	"github.com/tradesbook-ie/tradesbook/internal/shared/utils"
)

// Router exposes the HTTP surface built by the Container.
type Router struct {
	*Container
}

// NewRouter wraps an initialized container.
func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	utils.RegisterGinValidators()

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	routes.SetupBookingRoutes(r.engine, &routes.BookingRouteConfig{
		BookingHandler:       r.hdlrs.bookingHandler,
		NegotiationHandler:   r.hdlrs.negotiationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})

	routes.SetupPhotoRoutes(r.engine, &routes.PhotoRouteConfig{
		PhotoHandler:         r.hdlrs.photoHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AdminTicketHandler:   r.hdlrs.adminTicketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimitMiddleware:  r.rateLimitMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown drains queued domain events and closes the broker connection.
func (r *Router) Shutdown() {
	if err := r.dispatcher.Stop(); err != nil {
		r.log.Warnw("failed to stop event dispatcher", "error", err)
	}

	if r.broker != nil {
		if err := r.broker.Close(); err != nil {
			r.log.Warnw("failed to close message broker connection", "error", err)
		}
	}
}
