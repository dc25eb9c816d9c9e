package router

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/handler"
	"pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, loginLimiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	e.GET("/login", authHandler.LoginPage, authMiddleware.Authenticate)
	e.POST("/login", authHandler.Login, authMiddleware.Authenticate, middleware.LoginRateLimit(loginLimiter))
	e.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
}
