package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEstadoRequiresBodyEstado(t *testing.T) {
	s := testServer()
	h := NewResultHandler(s, nil)
	e := newTestEcho(s)
	e.PUT("/api/resultados/:id/estado", Handle(h.Handler, h.UpdateEstado, http.StatusOK))

	rec := doJSON(e, http.MethodPut, "/api/resultados/5/estado", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "El estado es requerido", got["error"])
}

func TestCreateResultadoRequiresFechaAnalisis(t *testing.T) {
	s := testServer()
	h := NewResultHandler(s, nil)
	e := newTestEcho(s)
	e.POST("/api/resultados", Handle(h.Handler, h.Create, http.StatusCreated))

	rec := doJSON(e, http.MethodPost, "/api/resultados", `{
		"pacienteId":1,"pacienteNombre":"Ana Soto",
		"medicoId":2,"medicoNombre":"Dr. Paz",
		"laboratorio":"Central","tipoAnalisis":"Hemograma",
		"descripcion":"Control anual"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["error"], "fechaAnalisis: es obligatoria")
}

func TestCreateResultadoRejectsBadFechaFormat(t *testing.T) {
	s := testServer()
	h := NewResultHandler(s, nil)
	e := newTestEcho(s)
	e.POST("/api/resultados", Handle(h.Handler, h.Create, http.StatusCreated))

	rec := doJSON(e, http.MethodPost, "/api/resultados", `{
		"pacienteId":1,"pacienteNombre":"Ana Soto",
		"medicoId":2,"medicoNombre":"Dr. Paz",
		"laboratorio":"Central","tipoAnalisis":"Hemograma",
		"descripcion":"Control anual","fechaAnalisis":"14-03-2025"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Cuerpo de la petición inválido", got["error"])
}

func TestListByFechasRejectsBadRange(t *testing.T) {
	s := testServer()
	h := NewResultHandler(s, nil)
	e := newTestEcho(s)
	e.GET("/api/resultados/fechas", Handle(h.Handler, h.ListByFechas, http.StatusOK))

	rec := doJSON(e, http.MethodGet, "/api/resultados/fechas?inicio=2025-01-01&fin=ayer", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["error"], "fecha inválida")
}
