package handler

import (
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/clinilab/clinilab/internal/service"
	"github.com/clinilab/clinilab/internal/validation"
	"github.com/labstack/echo/v4"
)

// ResultHandler serves the /api/resultados routes.
type ResultHandler struct {
	Handler
	service *service.ResultService
}

func NewResultHandler(s *server.Server, svc *service.ResultService) *ResultHandler {
	return &ResultHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// resultadoPayload is the create/full-update body. Estado is free text
// here; the service parses it (empty defaults to PENDIENTE on create).
type resultadoPayload struct {
	PacienteID        int64        `json:"pacienteId" validate:"required"`
	PacienteNombre    string       `json:"pacienteNombre" validate:"required"`
	MedicoID          int64        `json:"medicoId" validate:"required"`
	MedicoNombre      string       `json:"medicoNombre" validate:"required"`
	Laboratorio       string       `json:"laboratorio" validate:"required"`
	TipoAnalisis      string       `json:"tipoAnalisis" validate:"required,min=3,max=150"`
	Descripcion       string       `json:"descripcion" validate:"required"`
	ResultadoDetalle  string       `json:"resultadoDetalle"`
	Estado            string       `json:"estado"`
	FechaAnalisis     domain.Date  `json:"fechaAnalisis"`
	FechaEntrega      *domain.Date `json:"fechaEntrega"`
	Observaciones     string       `json:"observaciones"`
	ValoresReferencia string       `json:"valoresReferencia"`
}

func (r *resultadoPayload) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	// validator tags cannot express "required" for the Date wrapper.
	if r.FechaAnalisis.IsZero() {
		return validation.CustomValidationErrors{
			{Field: "fechaAnalisis", Message: "es obligatoria"},
		}
	}
	return nil
}

func (r *resultadoPayload) toDomain() *domain.Result {
	return &domain.Result{
		PacienteID:        r.PacienteID,
		PacienteNombre:    r.PacienteNombre,
		MedicoID:          r.MedicoID,
		MedicoNombre:      r.MedicoNombre,
		Laboratorio:       r.Laboratorio,
		TipoAnalisis:      r.TipoAnalisis,
		Descripcion:       r.Descripcion,
		ResultadoDetalle:  r.ResultadoDetalle,
		Estado:            domain.ResultStatus(r.Estado),
		FechaAnalisis:     r.FechaAnalisis,
		FechaEntrega:      r.FechaEntrega,
		Observaciones:     r.Observaciones,
		ValoresReferencia: r.ValoresReferencia,
	}
}

type updateResultadoRequest struct {
	resultadoPayload
	ID int64 `param:"id" validate:"required"`
}

func (r *updateResultadoRequest) Validate() error {
	return r.resultadoPayload.Validate()
}

type updateEstadoRequest struct {
	ID     int64  `param:"id"`
	Estado string `json:"estado"`
}

func (r *updateEstadoRequest) Validate() error { return nil }

type pacienteParam struct {
	PacienteID int64 `param:"pacienteId" validate:"required"`
}

func (r *pacienteParam) Validate() error {
	return validation.Struct(r)
}

type medicoParam struct {
	MedicoID int64 `param:"medicoId" validate:"required"`
}

func (r *medicoParam) Validate() error {
	return validation.Struct(r)
}

type laboratorioNombreParam struct {
	Nombre string `param:"nombre" validate:"required"`
}

func (r *laboratorioNombreParam) Validate() error {
	return validation.Struct(r)
}

type estadoParam struct {
	Estado string `param:"estado" validate:"required"`
}

func (r *estadoParam) Validate() error {
	return validation.Struct(r)
}

type fechasQuery struct {
	Inicio string `query:"inicio" validate:"required"`
	Fin    string `query:"fin" validate:"required"`
}

func (r *fechasQuery) Validate() error {
	return validation.Struct(r)
}

type pacienteEstadoParams struct {
	PacienteID int64  `param:"pacienteId" validate:"required"`
	Estado     string `param:"estado" validate:"required"`
}

func (r *pacienteEstadoParams) Validate() error {
	return validation.Struct(r)
}

func (h *ResultHandler) List(c echo.Context, _ *noPayload) ([]domain.Result, error) {
	return h.service.List(c.Request().Context())
}

func (h *ResultHandler) Get(c echo.Context, req *idParam) (*domain.Result, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *ResultHandler) ListByPaciente(c echo.Context, req *pacienteParam) ([]domain.Result, error) {
	return h.service.ListByPaciente(c.Request().Context(), req.PacienteID)
}

func (h *ResultHandler) ListByMedico(c echo.Context, req *medicoParam) ([]domain.Result, error) {
	return h.service.ListByMedico(c.Request().Context(), req.MedicoID)
}

func (h *ResultHandler) ListByLaboratorio(c echo.Context, req *laboratorioNombreParam) ([]domain.Result, error) {
	return h.service.ListByLaboratorio(c.Request().Context(), req.Nombre)
}

func (h *ResultHandler) ListByEstado(c echo.Context, req *estadoParam) ([]domain.Result, error) {
	return h.service.ListByEstado(c.Request().Context(), req.Estado)
}

// ListByFechas returns results whose analysis date falls inside the
// inclusive ?inicio=&fin= range; both bounds use the 2006-01-02 layout.
func (h *ResultHandler) ListByFechas(c echo.Context, req *fechasQuery) ([]domain.Result, error) {
	inicio, err := domain.ParseDate(req.Inicio)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}
	fin, err := domain.ParseDate(req.Fin)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}
	return h.service.ListByFechaRange(c.Request().Context(), inicio, fin)
}

func (h *ResultHandler) ListByPacienteAndEstado(c echo.Context, req *pacienteEstadoParams) ([]domain.Result, error) {
	return h.service.ListByPacienteAndEstado(c.Request().Context(), req.PacienteID, req.Estado)
}

func (h *ResultHandler) Create(c echo.Context, req *resultadoPayload) (*domain.Result, error) {
	res := req.toDomain()
	if err := h.service.Create(c.Request().Context(), res); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *ResultHandler) Update(c echo.Context, req *updateResultadoRequest) (*domain.Result, error) {
	res := req.toDomain()
	if err := h.service.Update(c.Request().Context(), req.ID, res); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateEstado is the status-only transition endpoint. The body's estado
// key is required; unknown tokens fail downstream in the service.
func (h *ResultHandler) UpdateEstado(c echo.Context, req *updateEstadoRequest) (*domain.Result, error) {
	if req.Estado == "" {
		return nil, errs.NewValidationError("El estado es requerido", nil)
	}
	return h.service.UpdateEstado(c.Request().Context(), req.ID, req.Estado)
}

func (h *ResultHandler) Delete(c echo.Context, req *idParam) (map[string]string, error) {
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return map[string]string{"mensaje": "Resultado eliminado exitosamente"}, nil
}
