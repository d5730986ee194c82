package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinilab/clinilab/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitLoginFailsOpenWithoutRedis(t *testing.T) {
	limiter := NewRateLimitMiddleware(&server.Server{})

	e := echo.New()
	handler := limiter.LimitLogin()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Without a Redis client every attempt must pass through.
	for i := 0; i < loginAttemptLimit+5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
