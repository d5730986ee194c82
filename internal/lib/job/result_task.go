package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskResultDelivered is the job type enqueued when a result first
	// transitions to ENTREGADO.
	TaskResultDelivered = "email:resultado_entregado"
)

// ResultDeliveredPayload is the JSON payload for the delivered-result
// notification task.
type ResultDeliveredPayload struct {
	To             string `json:"to"`
	PacienteNombre string `json:"paciente_nombre"`
	TipoAnalisis   string `json:"tipo_analisis"`
	Laboratorio    string `json:"laboratorio"`
	FechaEntrega   string `json:"fecha_entrega"`
}

// NewResultDeliveredTask constructs the Asynq task notifying a patient
// that their result is ready.
//
// Options: up to 3 retries, default queue, 30s handler timeout.
func NewResultDeliveredTask(p ResultDeliveredPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskResultDelivered,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
