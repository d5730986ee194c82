// Package handler is the HTTP layer: it parses requests, runs input
// validation through the validation package, and calls the service layer.
package handler

import (
	"github.com/clinilab/clinilab/internal/server"
	"github.com/clinilab/clinilab/internal/service"
	"github.com/clinilab/clinilab/internal/validation"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Dev        *DevHandler
	Laboratory *LaboratoryHandler
	Result     *ResultHandler
	User       *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Dev:        NewDevHandler(s),
		Laboratory: NewLaboratoryHandler(s, services.Laboratory),
		Result:     NewResultHandler(s, services.Result),
		User:       NewUserHandler(s, services.User),
	}
}

// noPayload is the request type for endpoints that take no input.
type noPayload struct{}

func (*noPayload) Validate() error { return nil }

// idParam captures the numeric :id path parameter shared by most routes.
type idParam struct {
	ID int64 `param:"id" validate:"required"`
}

func (r *idParam) Validate() error {
	return validation.Struct(r)
}
