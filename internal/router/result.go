package router

import (
	"net/http"

	"github.com/clinilab/clinilab/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerResultRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/api/resultados")

	g.GET("", handler.Handle(h.Result.Handler, h.Result.List, http.StatusOK))
	g.GET("/fechas", handler.Handle(h.Result.Handler, h.Result.ListByFechas, http.StatusOK))
	g.GET("/paciente/:pacienteId", handler.Handle(h.Result.Handler, h.Result.ListByPaciente, http.StatusOK))
	g.GET("/paciente/:pacienteId/estado/:estado", handler.Handle(h.Result.Handler, h.Result.ListByPacienteAndEstado, http.StatusOK))
	g.GET("/medico/:medicoId", handler.Handle(h.Result.Handler, h.Result.ListByMedico, http.StatusOK))
	g.GET("/laboratorio/:nombre", handler.Handle(h.Result.Handler, h.Result.ListByLaboratorio, http.StatusOK))
	g.GET("/estado/:estado", handler.Handle(h.Result.Handler, h.Result.ListByEstado, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Result.Handler, h.Result.Get, http.StatusOK))

	g.POST("", handler.Handle(h.Result.Handler, h.Result.Create, http.StatusCreated))
	g.PUT("/:id", handler.Handle(h.Result.Handler, h.Result.Update, http.StatusOK))
	g.PUT("/:id/estado", handler.Handle(h.Result.Handler, h.Result.UpdateEstado, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Result.Handler, h.Result.Delete, http.StatusOK))
}
