package router

import (
	"github.com/clinilab/clinilab/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic:
// health status, docs UI, and the static assets the docs UI loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json and openapi.html.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	// Dev-only email template preview; answers 404 in production.
	r.GET("/dev/emails/:template", h.Dev.PreviewEmail)
}
