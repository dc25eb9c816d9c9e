package router

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/handler"
)

func SetupPublicRouter(e *echo.Echo) {
	pageHandler := handler.GetPageHandler()
	e.GET("/", pageHandler.Landing)
}
