package router

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/handler"
	"pasaratsiri/internal/adapter/api/middleware"
)

// SetupWebSocketRouter registers the live view endpoint. The upgrade
// request carries the session cookie, so the admin gate applies as usual.
func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	wsHandler := handler.GetWebSocketHandler()
	e.GET("/admin/ws/:resource", wsHandler.HandleWebSocket, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
