package router

import (
	"net/http"

	"github.com/clinilab/clinilab/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerLaboratoryRoutes wires the laboratorios registry. Static segments
// (activos, disponibles, buscar) must coexist with :id; Echo resolves
// static routes before params so the order here is not significant.
func registerLaboratoryRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/api/laboratorios")

	g.GET("", handler.Handle(h.Laboratory.Handler, h.Laboratory.List, http.StatusOK))
	g.GET("/activos", handler.Handle(h.Laboratory.Handler, h.Laboratory.ListActive, http.StatusOK))
	g.GET("/disponibles", handler.Handle(h.Laboratory.Handler, h.Laboratory.ListAvailable, http.StatusOK))
	g.GET("/buscar", handler.Handle(h.Laboratory.Handler, h.Laboratory.SearchByNombre, http.StatusOK))
	g.GET("/tipo/:tipo", handler.Handle(h.Laboratory.Handler, h.Laboratory.ListByTipo, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Laboratory.Handler, h.Laboratory.Get, http.StatusOK))

	g.POST("", handler.Handle(h.Laboratory.Handler, h.Laboratory.Create, http.StatusCreated))
	g.PUT("/:id", handler.Handle(h.Laboratory.Handler, h.Laboratory.Update, http.StatusOK))
	g.PATCH("/:id/activar", handler.Handle(h.Laboratory.Handler, h.Laboratory.Activate, http.StatusOK))

	// DELETE is the soft delete; the permanent variant is a distinct route
	// so the irreversible path stays syntactically separate.
	g.DELETE("/:id", handler.Handle(h.Laboratory.Handler, h.Laboratory.Deactivate, http.StatusOK))
	g.DELETE("/:id/permanente", handler.Handle(h.Laboratory.Handler, h.Laboratory.DeletePermanent, http.StatusOK))
}
