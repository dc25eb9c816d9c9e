package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store    pinger
	identity pinger
}

var healthHandler *HealthHandler

func NewHealthHandler(store, identity pinger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		identity: identity,
	}
}

func SetupHealthHandler(store, identity pinger) {
	healthHandler = NewHealthHandler(store, identity)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckFirebaseHealth pings the document store and the identity provider.
func (h *HealthHandler) CheckFirebaseHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	if err := h.identity.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Firebase Auth connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firebase connected successfully",
	})
}
