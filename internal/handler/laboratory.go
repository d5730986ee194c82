package handler

import (
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/clinilab/clinilab/internal/service"
	"github.com/clinilab/clinilab/internal/validation"
	"github.com/labstack/echo/v4"
)

// LaboratoryHandler serves the /api/laboratorios routes.
type LaboratoryHandler struct {
	Handler
	service *service.LaboratoryService
}

func NewLaboratoryHandler(s *server.Server, svc *service.LaboratoryService) *LaboratoryHandler {
	return &LaboratoryHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// laboratorioPayload is the create/update body. The registry historically
// accepted laboratories without field-level validation, so only binding can
// reject the payload here; activo omitted on create defaults to true.
type laboratorioPayload struct {
	Nombre          string `json:"nombre"`
	Tipo            string `json:"tipo"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Especialidades  string `json:"especialidades"`
	HorarioAtencion string `json:"horarioAtencion"`
	Activo          *bool  `json:"activo"`
	CapacidadDiaria int    `json:"capacidadDiaria"`
}

func (r *laboratorioPayload) Validate() error { return nil }

func (r *laboratorioPayload) toDomain() *domain.Laboratory {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return &domain.Laboratory{
		Nombre:          r.Nombre,
		Tipo:            r.Tipo,
		Direccion:       r.Direccion,
		Telefono:        r.Telefono,
		Email:           r.Email,
		Especialidades:  r.Especialidades,
		HorarioAtencion: r.HorarioAtencion,
		Activo:          activo,
		CapacidadDiaria: r.CapacidadDiaria,
	}
}

type updateLaboratorioRequest struct {
	laboratorioPayload
	ID int64 `param:"id" validate:"required"`
}

func (r *updateLaboratorioRequest) Validate() error {
	return validation.Struct(r)
}

type tipoParam struct {
	Tipo string `param:"tipo" validate:"required"`
}

func (r *tipoParam) Validate() error {
	return validation.Struct(r)
}

type nombreQuery struct {
	Nombre string `query:"nombre" validate:"required"`
}

func (r *nombreQuery) Validate() error {
	return validation.Struct(r)
}

func (h *LaboratoryHandler) List(c echo.Context, _ *noPayload) ([]domain.Laboratory, error) {
	return h.service.List(c.Request().Context())
}

func (h *LaboratoryHandler) ListActive(c echo.Context, _ *noPayload) ([]domain.Laboratory, error) {
	return h.service.ListActive(c.Request().Context())
}

func (h *LaboratoryHandler) ListAvailable(c echo.Context, _ *noPayload) ([]domain.Laboratory, error) {
	return h.service.ListAvailable(c.Request().Context())
}

func (h *LaboratoryHandler) Get(c echo.Context, req *idParam) (*domain.Laboratory, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *LaboratoryHandler) Create(c echo.Context, req *laboratorioPayload) (*domain.Laboratory, error) {
	lab := req.toDomain()
	if err := h.service.Create(c.Request().Context(), lab); err != nil {
		return nil, err
	}
	return lab, nil
}

func (h *LaboratoryHandler) Update(c echo.Context, req *updateLaboratorioRequest) (*domain.Laboratory, error) {
	lab := req.toDomain()
	if err := h.service.Update(c.Request().Context(), req.ID, lab); err != nil {
		return nil, err
	}
	return lab, nil
}

// Deactivate is the default DELETE: a soft delete that keeps the row.
func (h *LaboratoryHandler) Deactivate(c echo.Context, req *idParam) (map[string]string, error) {
	if err := h.service.Deactivate(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return map[string]string{"mensaje": "Laboratorio desactivado exitosamente"}, nil
}

// DeletePermanent removes the row for good.
func (h *LaboratoryHandler) DeletePermanent(c echo.Context, req *idParam) (map[string]string, error) {
	if err := h.service.DeletePermanent(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return map[string]string{"mensaje": "Laboratorio eliminado permanentemente"}, nil
}

func (h *LaboratoryHandler) Activate(c echo.Context, req *idParam) (*domain.Laboratory, error) {
	return h.service.Activate(c.Request().Context(), req.ID)
}

func (h *LaboratoryHandler) ListByTipo(c echo.Context, req *tipoParam) ([]domain.Laboratory, error) {
	return h.service.ListByTipo(c.Request().Context(), req.Tipo)
}

func (h *LaboratoryHandler) SearchByNombre(c echo.Context, req *nombreQuery) ([]domain.Laboratory, error) {
	return h.service.SearchByNombre(c.Request().Context(), req.Nombre)
}
