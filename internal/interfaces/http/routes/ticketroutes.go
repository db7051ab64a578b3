package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/permission"
	tickethandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/ticket"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AdminTicketHandler   *tickethandlers.AdminTicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := engine.Group("/support/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	if config.RateLimitMiddleware != nil {
		tickets.Use(config.RateLimitMiddleware.Limit())
	}
	{
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionWrite),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.ListMyTickets)
		tickets.POST("/:id/messages",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionWrite),
			config.TicketHandler.AddMessage)
		tickets.GET("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.GetTicket)
	}

	admin := engine.Group("/admin/support/tickets")
	admin.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		admin.GET("",
			perm.RequirePermission(permission.ResourceTicketAdmin, permission.ActionRead),
			config.AdminTicketHandler.ListTickets)
		admin.POST("/:id/reply",
			perm.RequirePermission(permission.ResourceTicketAdmin, permission.ActionWrite),
			config.AdminTicketHandler.ReplyTicket)
		admin.PUT("/:id/status",
			perm.RequirePermission(permission.ResourceTicketAdmin, permission.ActionWrite),
			config.AdminTicketHandler.SetStatus)
		admin.GET("/:id",
			perm.RequirePermission(permission.ResourceTicketAdmin, permission.ActionRead),
			config.AdminTicketHandler.GetTicket)
		admin.DELETE("/:id",
			perm.RequirePermission(permission.ResourceTicketAdmin, permission.ActionDelete),
			config.AdminTicketHandler.DeleteTicket)
	}
}
