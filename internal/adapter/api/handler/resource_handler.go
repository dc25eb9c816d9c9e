package handler

import (
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/response"
)

type ResourceHandler struct {
	resourceUseCase *usecase.ResourceUseCase
}

func NewResourceHandler(resourceUseCase *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{
		resourceUseCase: resourceUseCase,
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ResourceHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.resourceUseCase.Delete(c.Request().Context(), c.Param("resource"), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id})
}

func (h *ResourceHandler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	id := c.Param("id")
	if err := h.resourceUseCase.UpdateStatus(c.Request().Context(), c.Param("resource"), id, req.Status); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": id, "status": req.Status})
}
