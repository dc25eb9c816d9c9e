package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/response"
)

type PageHandler struct {
	landingUseCase   *usecase.LandingUseCase
	dashboardUseCase *usecase.DashboardUseCase
	presenter        *view.Presenter
}

func NewPageHandler(landingUseCase *usecase.LandingUseCase, dashboardUseCase *usecase.DashboardUseCase, presenter *view.Presenter) *PageHandler {
	return &PageHandler{
		landingUseCase:   landingUseCase,
		dashboardUseCase: dashboardUseCase,
		presenter:        presenter,
	}
}

func (h *PageHandler) Landing(c echo.Context) error {
	stats := h.landingUseCase.Stats(c.Request().Context())
	return c.Render(http.StatusOK, "landing", view.Page{
		Title: "Beranda",
		Data:  view.Landing{Stats: stats},
	})
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	stats := h.dashboardUseCase.GetStats(c.Request().Context())
	return c.Render(http.StatusOK, "dashboard", page(c, "Dashboard", view.NavDashboard, h.presenter.Dashboard(stats)))
}

// DashboardStats serves the raw aggregate as JSON.
func (h *PageHandler) DashboardStats(c echo.Context) error {
	return response.Success(c, h.dashboardUseCase.GetStats(c.Request().Context()))
}

// Resource renders the shell of a live list page; rows arrive over the
// websocket.
func (h *PageHandler) Resource(c echo.Context) error {
	resource, ok := usecase.LookupResource(c.Param("resource"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Halaman tidak ditemukan.")
	}

	return c.Render(http.StatusOK, "resource", page(c, resource.Title, resource.Key, view.ResourcePage{
		Key:           resource.Key,
		Title:         resource.Title,
		Columns:       h.presenter.Columns(resource),
		Socket:        "/admin/ws/" + resource.Key,
		HasEditor:     resource.Key == usecase.ResourceMarketPrices,
		ConfirmDelete: resource.ConfirmDelete,
	}))
}
