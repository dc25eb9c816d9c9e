package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
)

const (
	loginInvalidMessage = "Email dan password wajib diisi dengan benar."
	loginFailedMessage  = "Gagal masuk. Coba lagi."
)

type AuthHandler struct {
	sessionGuard  *usecase.SessionGuard
	sessionCookie middleware.SessionCookie
}

func NewAuthHandler(sessionGuard *usecase.SessionGuard, sessionCookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{
		sessionGuard:  sessionGuard,
		sessionCookie: sessionCookie,
	}
}

type loginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	if middleware.SessionFrom(c).IsAdmin() {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	form := view.LoginForm{}
	if c.QueryParam(middleware.DeniedQuery) != "" {
		form.Reason = usecase.NotAdminReason
	}
	return c.Render(http.StatusOK, "login", page(c, "Login", "", form))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c, http.StatusBadRequest, view.LoginForm{Error: loginInvalidMessage})
	}
	if err := c.Validate(&req); err != nil {
		return h.loginFailed(c, http.StatusBadRequest, view.LoginForm{Email: req.Email, Error: loginInvalidMessage})
	}

	result, err := h.sessionGuard.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errors.CodeUnauthorized) {
			return h.loginFailed(c, http.StatusUnauthorized, view.LoginForm{Email: req.Email, Error: errors.Message(err, loginFailedMessage)})
		}
		logger.Err(err, "sign-in of %s failed", req.Email)
		return h.loginFailed(c, http.StatusServiceUnavailable, view.LoginForm{Email: req.Email, Error: loginFailedMessage})
	}

	if !result.Session.IsAdmin() {
		h.sessionCookie.Clear(c)
		return h.loginFailed(c, http.StatusForbidden, view.LoginForm{Email: req.Email, Reason: result.Session.Reason})
	}

	h.sessionCookie.Write(c, result.Cookie)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessionGuard.SignOut(c.Request().Context(), middleware.SessionFrom(c))
	h.sessionCookie.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) loginFailed(c echo.Context, status int, form view.LoginForm) error {
	return c.Render(status, "login", page(c, "Login", "", form))
}
