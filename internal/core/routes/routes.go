package routes

import (
	"github.com/Erasmo-Dev/Cervejaria/internal/core/container"
	"github.com/Erasmo-Dev/Cervejaria/internal/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(container *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(container.Logger),
		middleware.RequestLoggerMiddleware(container.Logger),
	)

	RegisterUtilityRoutes(router, container)
	RegisterPublicRoutes(router, container)

	return router
}

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	publicRoutes := router.Group("")
	if container.RateLimiter != nil {
		publicRoutes.Use(middleware.RateLimitMiddleware(container.RateLimiter))
	}
	if container.Config.RequestTimeout > 0 {
		publicRoutes.Use(middleware.TimeoutMiddleware(container.Config.RequestTimeout))
	}

	container.StockHandler.RegisterRoutes(publicRoutes)
	container.CategoryHandler.RegisterRoutes(publicRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine, container *container.Container) {
	router.GET("/health", container.Health.Handler())
}
