package handler

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/usecase"
)

var (
	authHandler        *AuthHandler
	pageHandler        *PageHandler
	resourceHandler    *ResourceHandler
	marketPriceHandler *MarketPriceHandler
)

func Setup(
	sessionGuard *usecase.SessionGuard,
	sessionCookie middleware.SessionCookie,
	landingUseCase *usecase.LandingUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
	resourceUseCase *usecase.ResourceUseCase,
	marketPriceUseCase *usecase.MarketPriceUseCase,
	presenter *view.Presenter,
) {
	authHandler = NewAuthHandler(sessionGuard, sessionCookie)
	pageHandler = NewPageHandler(landingUseCase, dashboardUseCase, presenter)
	resourceHandler = NewResourceHandler(resourceUseCase)
	marketPriceHandler = NewMarketPriceHandler(marketPriceUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetPageHandler() *PageHandler {
	return pageHandler
}

func GetResourceHandler() *ResourceHandler {
	return resourceHandler
}

func GetMarketPriceHandler() *MarketPriceHandler {
	return marketPriceHandler
}

// page wraps data with what every template needs: the session, the CSRF
// token and the sidebar.
func page(c echo.Context, title, active string, data interface{}) view.Page {
	return view.Page{
		Title:   title,
		Session: middleware.SessionFrom(c),
		CSRF:    middleware.CSRFToken(c),
		Active:  active,
		Nav:     view.Nav(),
		Data:    data,
	}
}
