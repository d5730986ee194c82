package handler

import (
	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/clinilab/clinilab/internal/service"
	"github.com/clinilab/clinilab/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the /api/usuarios routes.
type UserHandler struct {
	Handler
	service *service.UserService
}

func NewUserHandler(s *server.Server, svc *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// createUsuarioRequest carries the account fields. Rol is parsed by the
// handler so an unknown token fails with the message naming the valid set.
type createUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido string `json:"apellido" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Rut      string `json:"rut" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
	Rol      string `json:"rol" validate:"required"`
	Activo   *bool  `json:"activo"`
}

func (r *createUsuarioRequest) Validate() error {
	return validation.Struct(r)
}

// updateUsuarioRequest differs from create in one rule: an absent or empty
// password keeps the stored one.
type updateUsuarioRequest struct {
	ID       int64  `param:"id" validate:"required"`
	Nombre   string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido string `json:"apellido" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Rut      string `json:"rut" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
	Rol      string `json:"rol" validate:"required"`
	Activo   *bool  `json:"activo"`
}

func (r *updateUsuarioRequest) Validate() error {
	return validation.Struct(r)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() error { return nil }

type emailParam struct {
	Email string `param:"email" validate:"required"`
}

func (r *emailParam) Validate() error {
	return validation.Struct(r)
}

type rolParam struct {
	Rol string `param:"rol" validate:"required"`
}

func (r *rolParam) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) List(c echo.Context, _ *noPayload) ([]domain.User, error) {
	return h.service.List(c.Request().Context())
}

func (h *UserHandler) Get(c echo.Context, req *idParam) (*domain.User, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) GetByEmail(c echo.Context, req *emailParam) (*domain.User, error) {
	return h.service.GetByEmail(c.Request().Context(), req.Email)
}

func (h *UserHandler) ListByRol(c echo.Context, req *rolParam) ([]domain.User, error) {
	return h.service.ListByRol(c.Request().Context(), req.Rol)
}

func (h *UserHandler) ListActive(c echo.Context, _ *noPayload) ([]domain.User, error) {
	return h.service.ListActive(c.Request().Context())
}

func (h *UserHandler) Create(c echo.Context, req *createUsuarioRequest) (*domain.User, error) {
	rol, err := domain.ParseRole(req.Rol)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}

	user := &domain.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: req.Password,
		Rut:      req.Rut,
		Telefono: req.Telefono,
		Rol:      rol,
		Activo:   req.Activo,
	}
	if err := h.service.Create(c.Request().Context(), user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login performs the plaintext credential check. Success answers with the
// legacy body: a message plus the account (password never serialized).
func (h *UserHandler) Login(c echo.Context, req *loginRequest) (map[string]interface{}, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errs.NewValidationError("Email y contraseña son requeridos", nil)
	}

	user, err := h.service.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"mensaje": "Inicio de sesión exitoso",
		"usuario": user,
	}, nil
}

func (h *UserHandler) Update(c echo.Context, req *updateUsuarioRequest) (*domain.User, error) {
	rol, err := domain.ParseRole(req.Rol)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}

	user := &domain.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: req.Password,
		Rut:      req.Rut,
		Telefono: req.Telefono,
		Rol:      rol,
		Activo:   req.Activo,
	}
	return h.service.Update(c.Request().Context(), req.ID, user)
}

func (h *UserHandler) Activate(c echo.Context, req *idParam) (*domain.User, error) {
	return h.service.Activate(c.Request().Context(), req.ID)
}

func (h *UserHandler) Deactivate(c echo.Context, req *idParam) (*domain.User, error) {
	return h.service.Deactivate(c.Request().Context(), req.ID)
}

func (h *UserHandler) Delete(c echo.Context, req *idParam) (map[string]string, error) {
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return map[string]string{"mensaje": "Usuario eliminado exitosamente"}, nil
}
