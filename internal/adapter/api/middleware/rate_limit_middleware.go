package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/infrastructure/ratelimit"
	"pasaratsiri/pkg/logger"
)

const RateLimitedMessage = "Terlalu banyak percobaan masuk. Coba lagi nanti."

// LoginRateLimit throttles sign-in attempts per client IP and answers with
// the login form when the bucket is empty.
func LoginRateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, retryAfter := limiter.Allow(ip)
			if allowed {
				return next(c)
			}

			logger.Warn("login rate limit hit for %s (retry in %s)", ip, retryAfter)
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			return c.Render(http.StatusTooManyRequests, "login", view.Page{
				Title: "Login",
				CSRF:  CSRFToken(c),
				Data: view.LoginForm{
					Email: c.FormValue("email"),
					Error: RateLimitedMessage,
				},
			})
		}
	}
}
