// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware chain and defines the API route groups,
// mapping the three registries' paths to their handlers.
package router

import (
	"github.com/clinilab/clinilab/internal/handler"
	"github.com/clinilab/clinilab/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Setup builds the Echo instance: global error handler, middleware chain in
// dependency order (request id before the context enhancer, tracing before
// the logger that reads trace ids), then the route groups.
func Setup(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerLaboratoryRoutes(e, h)
	registerResultRoutes(e, h)
	registerUserRoutes(e, h, m)

	return e
}
