package router

import (
	"net/http"

	"github.com/clinilab/clinilab/internal/handler"
	"github.com/clinilab/clinilab/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	g := r.Group("/api/usuarios")

	g.GET("", handler.Handle(h.User.Handler, h.User.List, http.StatusOK))
	g.GET("/activos", handler.Handle(h.User.Handler, h.User.ListActive, http.StatusOK))
	g.GET("/email/:email", handler.Handle(h.User.Handler, h.User.GetByEmail, http.StatusOK))
	g.GET("/rol/:rol", handler.Handle(h.User.Handler, h.User.ListByRol, http.StatusOK))
	g.GET("/:id", handler.Handle(h.User.Handler, h.User.Get, http.StatusOK))

	g.POST("", handler.Handle(h.User.Handler, h.User.Create, http.StatusCreated))
	g.POST("/login", handler.Handle(h.User.Handler, h.User.Login, http.StatusOK), m.RateLimit.LimitLogin())

	g.PUT("/:id", handler.Handle(h.User.Handler, h.User.Update, http.StatusOK))
	g.PUT("/:id/activar", handler.Handle(h.User.Handler, h.User.Activate, http.StatusOK))
	g.PUT("/:id/desactivar", handler.Handle(h.User.Handler, h.User.Deactivate, http.StatusOK))

	g.DELETE("/:id", handler.Handle(h.User.Handler, h.User.Delete, http.StatusOK))
}
