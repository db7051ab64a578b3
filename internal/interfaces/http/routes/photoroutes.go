package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/permission"
	photohandlers "github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/photo"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/middleware"
)

type PhotoRouteConfig struct {
	PhotoHandler         *photohandlers.PhotoHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

func SetupPhotoRoutes(engine *gin.Engine, config *PhotoRouteConfig) {
	perm := config.PermissionMiddleware

	installer := engine.Group("/installer")
	installer.Use(config.AuthMiddleware.RequireAuth())
	if config.RateLimitMiddleware != nil {
		installer.Use(config.RateLimitMiddleware.Limit())
	}
	{
		installer.POST("/upload-before-after-photos",
			perm.RequirePermission(permission.ResourcePhoto, permission.ActionWrite),
			config.PhotoHandler.SubmitPhotos)

		progress := installer.Group("/photo-progress/:bookingId")
		progress.GET("",
			perm.RequirePermission(permission.ResourcePhoto, permission.ActionRead),
			config.PhotoHandler.GetProgress)
		progress.POST("",
			perm.RequirePermission(permission.ResourcePhoto, permission.ActionWrite),
			config.PhotoHandler.CapturePhoto)
		progress.DELETE("/:tvIndex/:photoType",
			perm.RequirePermission(permission.ResourcePhoto, permission.ActionDelete),
			config.PhotoHandler.DeletePhoto)
	}
}
