package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResultStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ResultStatus
	}{
		{"PENDIENTE", StatusPendiente},
		{"pendiente", StatusPendiente},
		{"  En_Proceso  ", StatusEnProceso},
		{"completado", StatusCompletado},
		{"EnTrEgAdO", StatusEntregado},
	}

	for _, tc := range cases {
		got, err := ParseResultStatus(tc.in)
		assert.NoError(t, err, "token %q", tc.in)
		assert.Equal(t, tc.want, got, "token %q", tc.in)
	}
}

func TestParseResultStatusRejectsUnknownToken(t *testing.T) {
	_, err := ParseResultStatus("DESPACHADO")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `estado inválido: "DESPACHADO"`)
	assert.Contains(t, err.Error(), "PENDIENTE, EN_PROCESO, COMPLETADO, ENTREGADO")
}

func TestParseResultStatusRejectsEmptyToken(t *testing.T) {
	_, err := ParseResultStatus("")
	assert.Error(t, err)
}
