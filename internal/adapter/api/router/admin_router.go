package router

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/handler"
	"pasaratsiri/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	pageHandler := handler.GetPageHandler()
	resourceHandler := handler.GetResourceHandler()
	marketPriceHandler := handler.GetMarketPriceHandler()

	admin := e.Group("/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", pageHandler.Dashboard)
	admin.GET("/:resource", pageHandler.Resource)

	api := admin.Group("/api")
	api.GET("/dashboard", pageHandler.DashboardStats)
	api.PUT("/market-prices", marketPriceHandler.Save)
	api.DELETE("/:resource/:id", resourceHandler.Delete)
	api.PATCH("/:resource/:id/status", resourceHandler.UpdateStatus)
}
