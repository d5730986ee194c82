package middleware

import (
	"fmt"
	"time"

	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/labstack/echo/v4"
)

// Login throttling: the login endpoint compares plaintext passwords, so it
// needs a brute-force brake more than any other route.
const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// RateLimitMiddleware enforces per-IP request limits backed by Redis and
// records limit hits as New Relic custom events.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// LimitLogin returns a fixed-window limiter for the login route. The counter
// lives in Redis under the caller's IP; when Redis is unavailable the
// limiter fails open, the same degraded mode the notification queue uses.
func (r *RateLimitMiddleware) LimitLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.server.Redis == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:login:%s", c.RealIP())

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("login rate limiter unavailable, failing open")
				return next(c)
			}
			if count == 1 {
				r.server.Redis.Expire(ctx, key, loginAttemptWindow)
			}

			if count > loginAttemptLimit {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Demasiados intentos de inicio de sesión, intente más tarde")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit emits a New Relic custom event for a rejected request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
