package handler

import (
	"net/http"

	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/lib/email"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/labstack/echo/v4"
)

// DevHandler serves development-only utilities. Every route answers 404 in
// production so the surface matches an unregistered path.
type DevHandler struct {
	Handler
}

func NewDevHandler(s *server.Server) *DevHandler {
	return &DevHandler{
		Handler: NewHandler(s),
	}
}

// PreviewEmail renders an email template with its sample data so template
// changes can be reviewed in a browser.
func (h *DevHandler) PreviewEmail(c echo.Context) error {
	if h.server.Config.Primary.Env == "production" {
		return errs.NewNotFoundError("Ruta no encontrada")
	}

	name := c.Param("template")
	html, err := email.Preview(email.Template(name))
	if err != nil {
		return errs.NewNotFoundError("Plantilla no encontrada: " + name)
	}

	return c.HTML(http.StatusOK, html)
}
