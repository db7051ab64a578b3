package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/permission"
	bookinghandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/booking"
	negotiationhandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/negotiation"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
)

type BookingRouteConfig struct {
	BookingHandler       *bookinghandlers.BookingHandler
	NegotiationHandler   *negotiationhandlers.NegotiationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupBookingRoutes(engine *gin.Engine, config *BookingRouteConfig) {
	perm := config.PermissionMiddleware

	bookings := engine.Group("/bookings")
	bookings.Use(config.AuthMiddleware.RequireAuth())
	if config.RateLimitMiddleware != nil {
		bookings.Use(config.RateLimitMiddleware.Limit())
	}
	{
		bookings.POST("",
			perm.RequirePermission(permission.ResourceBooking, permission.ActionWrite),
			config.BookingHandler.CreateBooking)

		bookings.GET("/:id/schedule-negotiations",
			perm.RequirePermission(permission.ResourceNegotiation, permission.ActionRead),
			config.NegotiationHandler.ListProposals)
		bookings.POST("/:id/schedule-negotiations",
			perm.RequirePermission(permission.ResourceNegotiation, permission.ActionWrite),
			config.NegotiationHandler.ProposeSchedule)

		bookings.GET("/:id",
			perm.RequirePermission(permission.ResourceBooking, permission.ActionRead),
			config.BookingHandler.GetBooking)
	}

	negotiations := engine.Group("/schedule-negotiations")
	negotiations.Use(config.AuthMiddleware.RequireAuth())
	if config.RateLimitMiddleware != nil {
		negotiations.Use(config.RateLimitMiddleware.Limit())
	}
	{
		negotiations.PATCH("/:id",
			perm.RequirePermission(permission.ResourceNegotiation, permission.ActionWrite),
			config.NegotiationHandler.RespondToProposal)
		negotiations.DELETE("/:id",
			perm.RequirePermission(permission.ResourceNegotiation, permission.ActionDelete),
			config.NegotiationHandler.DeleteProposal)
	}
}
