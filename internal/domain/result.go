package domain

import (
	"fmt"
	"strings"
	"time"
)

// ResultStatus is the four-state lifecycle of a lab result.
//
// The set is closed; anything the parser does not recognize is rejected
// before it reaches storage. Transitions are deliberately unordered: the
// source system allowed any state to jump to any other (PENDIENTE straight
// to ENTREGADO included) and that behavior is preserved.
type ResultStatus string

const (
	StatusPendiente  ResultStatus = "PENDIENTE"
	StatusEnProceso  ResultStatus = "EN_PROCESO"
	StatusCompletado ResultStatus = "COMPLETADO"
	StatusEntregado  ResultStatus = "ENTREGADO"
)

// ResultStatuses lists the valid tokens in lifecycle order.
// Used by validation messages so clients see the full closed set.
var ResultStatuses = []ResultStatus{StatusPendiente, StatusEnProceso, StatusCompletado, StatusEntregado}

// ParseResultStatus normalizes a client-supplied token (any case) into a
// ResultStatus. Unrecognized tokens fail with an error naming the valid set.
func ParseResultStatus(s string) (ResultStatus, error) {
	switch ResultStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPendiente:
		return StatusPendiente, nil
	case StatusEnProceso:
		return StatusEnProceso, nil
	case StatusCompletado:
		return StatusCompletado, nil
	case StatusEntregado:
		return StatusEntregado, nil
	}
	return "", fmt.Errorf("estado inválido: %q (debe ser uno de: %s)", s, joinStatuses())
}

func joinStatuses() string {
	tokens := make([]string, len(ResultStatuses))
	for i, st := range ResultStatuses {
		tokens[i] = string(st)
	}
	return strings.Join(tokens, ", ")
}

// Result is a lab-test outcome record.
//
// Patient, practitioner and laboratory are denormalized copies (id + name,
// free-text name for the lab): the registry enforces no referential
// integrity towards the other registries.
//
// FechaEntrega stays nil until the first transition to ENTREGADO stamps it;
// once set it is never overwritten.
type Result struct {
	ID                 int64        `json:"id"`
	PacienteID         int64        `json:"pacienteId"`
	PacienteNombre     string       `json:"pacienteNombre"`
	MedicoID           int64        `json:"medicoId"`
	MedicoNombre       string       `json:"medicoNombre"`
	Laboratorio        string       `json:"laboratorio"`
	TipoAnalisis       string       `json:"tipoAnalisis"`
	Descripcion        string       `json:"descripcion"`
	ResultadoDetalle   string       `json:"resultadoDetalle"`
	Estado             ResultStatus `json:"estado"`
	FechaAnalisis      Date         `json:"fechaAnalisis"`
	FechaEntrega       *Date        `json:"fechaEntrega"`
	Observaciones      string       `json:"observaciones"`
	ValoresReferencia  string       `json:"valoresReferencia"`
	FechaRegistro      time.Time    `json:"fechaRegistro"`
	FechaActualizacion time.Time    `json:"fechaActualizacion"`
}
