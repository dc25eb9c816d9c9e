package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/response"
)

// DeniedQuery marks a redirect to the login page after an account was
// refused admin access.
const DeniedQuery = "denied"

const loadingRefreshSeconds = 2

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly lets only resolved admin sessions through. An unresolved
// session gets a neutral placeholder, never content or a redirect.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := SessionFrom(c)

		switch {
		case session.IsAdmin():
			return next(c)

		case session.State == entity.SessionLoading:
			if isAPIRequest(c) {
				return response.Error(c, errors.Unavailable("Sesi sedang diverifikasi. Coba lagi.", nil))
			}
			c.Response().Header().Set("Retry-After", "2")
			return c.Render(http.StatusServiceUnavailable, "loading", view.Page{
				Title: "Memuat",
				Data:  view.Loading{RefreshSeconds: loadingRefreshSeconds},
			})

		default:
			if isAPIRequest(c) {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}
			target := "/login"
			if session.Reason != "" {
				target += "?" + DeniedQuery + "=1"
			}
			return c.Redirect(http.StatusSeeOther, target)
		}
	}
}

func isAPIRequest(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/admin/api/") || strings.HasPrefix(path, "/admin/ws/")
}
