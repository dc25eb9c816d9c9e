package handler

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/response"
)

type MarketPriceHandler struct {
	marketPriceUseCase *usecase.MarketPriceUseCase
}

func NewMarketPriceHandler(marketPriceUseCase *usecase.MarketPriceUseCase) *MarketPriceHandler {
	return &MarketPriceHandler{
		marketPriceUseCase: marketPriceUseCase,
	}
}

func (h *MarketPriceHandler) Save(c echo.Context) error {
	var input usecase.SaveMarketPriceInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	price, err := h.marketPriceUseCase.Save(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, price)
}
