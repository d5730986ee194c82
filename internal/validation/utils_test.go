package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinilab/clinilab/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
	Email  string `json:"email" validate:"required,email"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Fecha string `json:"fecha"`
}

func (p *customPayload) Validate() error {
	if p.Fecha == "" {
		return CustomValidationErrors{{Field: "fecha", Message: "es obligatoria"}}
	}
	return nil
}

func bindContext(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	c := bindContext(t, `{"nombre":"Laboratorio Central","email":"lab@clinilab.cl"}`)

	var p samplePayload
	err := BindAndValidate(c, &p)

	require.NoError(t, err)
	assert.Equal(t, "Laboratorio Central", p.Nombre)
}

func TestBindAndValidateRejectsMalformedBody(t *testing.T) {
	c := bindContext(t, `{"nombre":`)

	var p samplePayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Cuerpo de la petición inválido", httpErr.Message)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateTranslatesTagFailures(t *testing.T) {
	c := bindContext(t, `{"nombre":"X","email":"no-es-email"}`)

	var p samplePayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Validación fallida", httpErr.Message)
	require.Len(t, httpErr.Errors, 2)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "debe tener al menos 2 caracteres", byField["nombre"])
	assert.Equal(t, "debe ser un email válido", byField["email"])
}

func TestBindAndValidateReportsMissingRequiredFields(t *testing.T) {
	c := bindContext(t, `{}`)

	var p samplePayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "es obligatorio", httpErr.Errors[0].Error)
}

func TestBindAndValidateCarriesCustomErrors(t *testing.T) {
	c := bindContext(t, `{}`)

	var p customPayload
	err := BindAndValidate(c, &p)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "fecha", httpErr.Errors[0].Field)
	assert.Equal(t, "es obligatoria", httpErr.Errors[0].Error)
}
