package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clinilab/clinilab/internal/config"
	"github.com/clinilab/clinilab/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailClient is a package-level singleton used by job handlers. It must
// be initialized via InitHandlers before the worker server starts.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleResultDeliveredTask sends the delivered-result notification email.
//
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleResultDeliveredTask(ctx context.Context, t *asynq.Task) error {
	var p ResultDeliveredPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal result delivered payload: %w", err)
	}

	j.logger.Info().
		Str("type", "resultado_entregado").
		Str("to", p.To).
		Msg("Processing result delivered email task")

	err := emailClient.SendResultDeliveredEmail(p.To, p.PacienteNombre, p.TipoAnalisis, p.Laboratorio, p.FechaEntrega)
	if err != nil {
		j.logger.Error().
			Str("type", "resultado_entregado").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send result delivered email")
		return err
	}

	j.logger.Info().
		Str("type", "resultado_entregado").
		Str("to", p.To).
		Msg("Successfully sent result delivered email")

	return nil
}
