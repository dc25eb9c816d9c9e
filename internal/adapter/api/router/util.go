package router

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
	"pasaratsiri/pkg/response"
)

// NewHTTPErrorHandler answers JSON on the API and websocket paths and an
// error page everywhere else.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		path := c.Request().URL.Path
		if strings.HasPrefix(path, "/admin/api/") || strings.HasPrefix(path, "/admin/ws/") || strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/firebase-health") {
			if rerr := response.Error(c, err); rerr != nil {
				logger.Err(rerr, "writing error response")
			}
			return
		}

		status, message := http.StatusInternalServerError, "Terjadi kesalahan pada server."
		var httpErr *echo.HTTPError
		var appErr *errors.AppError
		switch {
		case stderrors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok && m != "" {
				message = m
			} else {
				message = http.StatusText(status)
			}
		case stderrors.As(err, &appErr):
			status, message = appErr.Status, appErr.Message
		}
		if status >= http.StatusInternalServerError {
			logger.Err(err, "%s %s", c.Request().Method, path)
		}

		back := "/"
		if strings.HasPrefix(path, "/admin") {
			back = "/admin"
		}
		if rerr := c.Render(status, "error", view.Page{
			Title: http.StatusText(status),
			Data:  view.ErrorPage{Status: status, Message: message, Back: back},
		}); rerr != nil {
			logger.Err(rerr, "rendering error page")
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
