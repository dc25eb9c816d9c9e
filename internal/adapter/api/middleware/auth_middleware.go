package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/usecase"
)

// SessionContextKey is where Authenticate stores the entity.Session.
const SessionContextKey = "session"

// SessionCookie describes the cookie that carries the session.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (sc SessionCookie) Read(c echo.Context) string {
	cookie, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (sc SessionCookie) Write(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type AuthMiddleware struct {
	guard  *usecase.SessionGuard
	cookie SessionCookie
}

func NewAuthMiddleware(guard *usecase.SessionGuard, cookie SessionCookie) *AuthMiddleware {
	return &AuthMiddleware{
		guard:  guard,
		cookie: cookie,
	}
}

// Authenticate resolves the session cookie and stores the result on the
// context. It never rejects a request; AdminOnly decides what to show.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		value := m.cookie.Read(c)
		if value == "" {
			c.Set(SessionContextKey, entity.AnonymousSession(""))
			return next(c)
		}

		session := m.guard.ResolveCookie(c.Request().Context(), value)
		if session.State == entity.SessionNone {
			m.cookie.Clear(c)
		}
		c.Set(SessionContextKey, session)
		return next(c)
	}
}

// SessionFrom returns the session Authenticate stored, or an anonymous one.
func SessionFrom(c echo.Context) entity.Session {
	if session, ok := c.Get(SessionContextKey).(entity.Session); ok {
		return session
	}
	return entity.AnonymousSession("")
}

// CSRFToken returns the token echo's CSRF middleware put on the context.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)
	return token
}
