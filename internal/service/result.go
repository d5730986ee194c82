package service

import (
	"context"
	"fmt"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/lib/job"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// ResultStore is the persistence surface the result service needs.
type ResultStore interface {
	FindAll(ctx context.Context) ([]domain.Result, error)
	FindByID(ctx context.Context, id int64) (*domain.Result, error)
	FindByPaciente(ctx context.Context, pacienteID int64) ([]domain.Result, error)
	FindByMedico(ctx context.Context, medicoID int64) ([]domain.Result, error)
	FindByLaboratorio(ctx context.Context, laboratorio string) ([]domain.Result, error)
	FindByEstado(ctx context.Context, estado domain.ResultStatus) ([]domain.Result, error)
	FindByFechaRange(ctx context.Context, inicio, fin domain.Date) ([]domain.Result, error)
	FindByPacienteAndEstado(ctx context.Context, pacienteID int64, estado domain.ResultStatus) ([]domain.Result, error)
	Create(ctx context.Context, res *domain.Result) error
	Update(ctx context.Context, res *domain.Result) error
	UpdateEstado(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error)
	Delete(ctx context.Context, id int64) error
}

// patientFinder is the slice of the user registry the result service uses
// to resolve the notification recipient. The lookup is best-effort: result
// rows reference patients by copied id with no referential integrity.
type patientFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// ResultService implements the resultados registry rules: the four-state
// status lifecycle and the one-shot fecha_entrega stamp.
type ResultService struct {
	server *server.Server
	repo   ResultStore
	users  patientFinder
}

func NewResultService(s *server.Server, repo ResultStore, users patientFinder) *ResultService {
	return &ResultService{
		server: s,
		repo:   repo,
		users:  users,
	}
}

func resultNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Resultado no encontrado con ID: %d", id))
}

func (s *ResultService) List(ctx context.Context) ([]domain.Result, error) {
	return s.repo.FindAll(ctx)
}

func (s *ResultService) Get(ctx context.Context, id int64) (*domain.Result, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resultNotFound(id)
		}
		return nil, err
	}
	return res, nil
}

func (s *ResultService) ListByPaciente(ctx context.Context, pacienteID int64) ([]domain.Result, error) {
	return s.repo.FindByPaciente(ctx, pacienteID)
}

func (s *ResultService) ListByMedico(ctx context.Context, medicoID int64) ([]domain.Result, error) {
	return s.repo.FindByMedico(ctx, medicoID)
}

func (s *ResultService) ListByLaboratorio(ctx context.Context, laboratorio string) ([]domain.Result, error) {
	return s.repo.FindByLaboratorio(ctx, laboratorio)
}

// ListByEstado rejects unknown status tokens with a ValidationError naming
// the valid set, so a bad token never reaches the database.
func (s *ResultService) ListByEstado(ctx context.Context, token string) ([]domain.Result, error) {
	estado, err := domain.ParseResultStatus(token)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}
	return s.repo.FindByEstado(ctx, estado)
}

func (s *ResultService) ListByFechaRange(ctx context.Context, inicio, fin domain.Date) ([]domain.Result, error) {
	return s.repo.FindByFechaRange(ctx, inicio, fin)
}

func (s *ResultService) ListByPacienteAndEstado(ctx context.Context, pacienteID int64, token string) ([]domain.Result, error) {
	estado, err := domain.ParseResultStatus(token)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}
	return s.repo.FindByPacienteAndEstado(ctx, pacienteID, estado)
}

// Create stores a new result. A missing estado defaults to PENDIENTE; a
// present one must parse, and arriving already as ENTREGADO does not stamp
// fecha_entrega — only the status transition path does that.
func (s *ResultService) Create(ctx context.Context, res *domain.Result) error {
	if res.Estado == "" {
		res.Estado = domain.StatusPendiente
	} else {
		estado, err := domain.ParseResultStatus(string(res.Estado))
		if err != nil {
			return errs.NewValidationError(err.Error(), nil)
		}
		res.Estado = estado
	}
	return s.repo.Create(ctx, res)
}

// Update replaces every mutable field of the result, estado and
// fecha_entrega included, exactly as supplied.
func (s *ResultService) Update(ctx context.Context, id int64, res *domain.Result) error {
	if res.Estado != "" {
		estado, err := domain.ParseResultStatus(string(res.Estado))
		if err != nil {
			return errs.NewValidationError(err.Error(), nil)
		}
		res.Estado = estado
	}

	res.ID = id
	if err := s.repo.Update(ctx, res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resultNotFound(id)
		}
		return err
	}
	return nil
}

// UpdateEstado performs the status-only transition. Transitions are
// unordered (any state may move to any other); the one rule is that the
// first move to ENTREGADO stamps fecha_entrega with today and a later
// ENTREGADO never overwrites it.
//
// The first delivery also enqueues the patient notification email;
// a failed enqueue is logged and never fails the request.
func (s *ResultService) UpdateEstado(ctx context.Context, id int64, token string) (*domain.Result, error) {
	estado, err := domain.ParseResultStatus(token)
	if err != nil {
		return nil, errs.NewInvalidStateError(err.Error())
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resultNotFound(id)
		}
		return nil, err
	}

	var fechaEntrega *domain.Date
	firstDelivery := estado == domain.StatusEntregado && existing.FechaEntrega == nil
	if firstDelivery {
		today := domain.Today()
		fechaEntrega = &today
	}

	updated, err := s.repo.UpdateEstado(ctx, id, estado, fechaEntrega)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resultNotFound(id)
		}
		return nil, err
	}

	if firstDelivery {
		s.notifyDelivered(ctx, updated)
	}

	return updated, nil
}

// Delete removes the result row permanently.
func (s *ResultService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resultNotFound(id)
		}
		return err
	}
	return nil
}

// notifyDelivered enqueues the delivered-result email for the patient. The
// patient reference carries no email, so the account is resolved through the
// user registry; a missing account or a full queue only logs.
func (s *ResultService) notifyDelivered(ctx context.Context, res *domain.Result) {
	if s.users == nil || s.server.Job == nil {
		return
	}

	patient, err := s.users.FindByID(ctx, res.PacienteID)
	if err != nil {
		s.server.Logger.Warn().Err(err).
			Int64("resultado_id", res.ID).
			Int64("paciente_id", res.PacienteID).
			Msg("no patient account for delivery notification")
		return
	}

	fechaEntrega := ""
	if res.FechaEntrega != nil {
		fechaEntrega = res.FechaEntrega.Format(domain.DateLayout)
	}

	task, err := job.NewResultDeliveredTask(job.ResultDeliveredPayload{
		To:             patient.Email,
		PacienteNombre: res.PacienteNombre,
		TipoAnalisis:   res.TipoAnalisis,
		Laboratorio:    res.Laboratorio,
		FechaEntrega:   fechaEntrega,
	})
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("resultado_id", res.ID).Msg("failed to build delivery notification task")
		return
	}

	if _, err := s.server.Job.Client.EnqueueContext(ctx, task); err != nil {
		s.server.Logger.Error().Err(err).Int64("resultado_id", res.ID).Msg("failed to enqueue delivery notification")
	}
}
