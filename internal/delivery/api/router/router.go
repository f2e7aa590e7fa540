// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	LinkHandler    *handler.LinkHandler
	AssetHandler   *handler.AssetHandler
	HealthHandler  *handler.HealthHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	linkHandler    *handler.LinkHandler
	assetHandler   *handler.AssetHandler
	healthHandler  *handler.HealthHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		linkHandler:    params.LinkHandler,
		assetHandler:   params.AssetHandler,
		healthHandler:  params.HealthHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Stored QR images, served when the bucket has no public origin of its own
	e.GET("/qr-codes/:file", r.assetHandler.ServeQRCode)

	api := e.Group("/api")
	api.POST("/generate-qr", r.linkHandler.GenerateQR)
	api.POST("/auth/verify-password", r.profileHandler.VerifyPassword)

	profilesGroup := api.Group("/profiles")
	{
		profilesGroup.POST("", r.profileHandler.CreateProfile)
		profilesGroup.GET("", r.profileHandler.GetProfile)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
		profilesGroup.PUT("/:id", r.profileHandler.UpdateProfile)
		profilesGroup.DELETE("/:id", r.profileHandler.DeleteProfile)
		profilesGroup.GET("/:id/qr", r.profileHandler.DownloadQRCode)
	}
}

func (r *router) RegisterDebugRoutes(e *echo.Echo) {
	if r.config.DebugRoutes != nil && r.config.DebugRoutes.Enabled {
		debugGroup := e.Group("/api/debug")
		debugGroup.GET("/profiles", r.profileHandler.ListProfiles)
	}
}
