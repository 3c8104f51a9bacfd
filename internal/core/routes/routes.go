package routes

import (
	"github.com/XenomaCode/MVP-CATERING/internal/core/container"
	"github.com/XenomaCode/MVP-CATERING/internal/metrics"
	"github.com/XenomaCode/MVP-CATERING/internal/middleware"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.LoginHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())

	container.ItemHandler.RegisterRoutes(protectedRoutes)
	container.EventHandler.RegisterRoutes(protectedRoutes)
	container.ExportHandler.RegisterRoutes(protectedRoutes)
	container.UserHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
	router.GET("/metrics", metrics.Handler())
}
