package router

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/infrastructure/ratelimit"
)

func Setup(
	e *echo.Echo,
	static fs.FS,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	loginLimiter *ratelimit.RateLimiter,
) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(e)
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(static)))))

	SetupPublicRouter(e)
	SetupAuthRouter(e, authMiddleware, loginLimiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
