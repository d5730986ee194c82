package service

import (
	"context"
	"testing"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/lib/job"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCreateDefaultsEstadoToPendiente(t *testing.T) {
	var created *domain.Result
	store := &mockResultStore{
		CreateFunc: func(ctx context.Context, res *domain.Result) error {
			created = res
			return nil
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	err := svc.Create(context.Background(), &domain.Result{PacienteID: 1, TipoAnalisis: "Hemograma"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPendiente, created.Estado)
}

func TestResultCreateNormalizesEstadoCase(t *testing.T) {
	var created *domain.Result
	store := &mockResultStore{
		CreateFunc: func(ctx context.Context, res *domain.Result) error {
			created = res
			return nil
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	err := svc.Create(context.Background(), &domain.Result{Estado: "en_proceso"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnProceso, created.Estado)
}

func TestResultCreateRejectsUnknownEstado(t *testing.T) {
	store := &mockResultStore{}
	svc := NewResultService(newTestServer(), store, nil)

	err := svc.Create(context.Background(), &domain.Result{Estado: "LISTO"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeValidation, httpErr.Code)
	assert.Equal(t, 0, store.CreateCalls)
}

func TestResultListByEstadoRejectsUnknownTokenBeforeStore(t *testing.T) {
	store := &mockResultStore{}
	svc := NewResultService(newTestServer(), store, nil)

	_, err := svc.ListByEstado(context.Background(), "DESPACHADO")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeValidation, httpErr.Code)
	assert.Contains(t, httpErr.Message, "PENDIENTE, EN_PROCESO, COMPLETADO, ENTREGADO")
	assert.Equal(t, 0, store.FindByEstadoCalls)
}

func TestResultUpdateEstadoRejectsUnknownToken(t *testing.T) {
	store := &mockResultStore{}
	svc := NewResultService(newTestServer(), store, nil)

	_, err := svc.UpdateEstado(context.Background(), 1, "TERMINADO")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeInvalidState, httpErr.Code)
	assert.Equal(t, 0, store.UpdateEstadoCalls)
}

func TestResultUpdateEstadoMapsMissingRowToNotFound(t *testing.T) {
	store := &mockResultStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Result, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	_, err := svc.UpdateEstado(context.Background(), 33, "ENTREGADO")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Resultado no encontrado con ID: 33", httpErr.Message)
}

func TestResultFirstDeliveryStampsToday(t *testing.T) {
	var gotFecha *domain.Date
	store := &mockResultStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Result, error) {
			return &domain.Result{ID: id, Estado: domain.StatusCompletado, FechaEntrega: nil}, nil
		},
		UpdateEstadoFunc: func(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
			gotFecha = fechaEntrega
			return &domain.Result{ID: id, Estado: estado, FechaEntrega: fechaEntrega, PacienteID: 5}, nil
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	updated, err := svc.UpdateEstado(context.Background(), 10, "entregado")

	require.NoError(t, err)
	require.NotNil(t, gotFecha)
	assert.Equal(t, domain.Today().Format(domain.DateLayout), gotFecha.Format(domain.DateLayout))
	assert.Equal(t, domain.StatusEntregado, updated.Estado)
}

func TestResultSecondDeliveryKeepsOriginalFecha(t *testing.T) {
	previous := domain.Today()
	var gotFecha *domain.Date
	passedNil := false
	store := &mockResultStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Result, error) {
			return &domain.Result{ID: id, Estado: domain.StatusEntregado, FechaEntrega: &previous}, nil
		},
		UpdateEstadoFunc: func(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
			gotFecha = fechaEntrega
			passedNil = fechaEntrega == nil
			return &domain.Result{ID: id, Estado: estado, FechaEntrega: &previous}, nil
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	updated, err := svc.UpdateEstado(context.Background(), 10, "ENTREGADO")

	require.NoError(t, err)
	assert.True(t, passedNil, "a repeated ENTREGADO must not supply a new delivery date, got %v", gotFecha)
	assert.Equal(t, &previous, updated.FechaEntrega)
}

func TestResultNonDeliveryTransitionDoesNotStamp(t *testing.T) {
	var gotFecha *domain.Date
	store := &mockResultStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Result, error) {
			return &domain.Result{ID: id, Estado: domain.StatusPendiente}, nil
		},
		UpdateEstadoFunc: func(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
			gotFecha = fechaEntrega
			return &domain.Result{ID: id, Estado: estado}, nil
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	_, err := svc.UpdateEstado(context.Background(), 10, "EN_PROCESO")

	require.NoError(t, err)
	assert.Nil(t, gotFecha)
}

func TestResultFirstDeliveryLooksUpPatientForNotification(t *testing.T) {
	fecha := domain.Today()
	store := &mockResultStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Result, error) {
			return &domain.Result{ID: id, Estado: domain.StatusCompletado, PacienteID: 5}, nil
		},
		UpdateEstadoFunc: func(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
			return &domain.Result{ID: id, Estado: estado, FechaEntrega: &fecha, PacienteID: 5}, nil
		},
	}
	users := &mockPatientFinder{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Email: "paciente@clinilab.cl"}, nil
		},
	}

	// A client pointed at an unroutable address: the enqueue fails, which
	// must only log, never fail the transition.
	logger := zerolog.Nop()
	srv := &server.Server{
		Logger: &logger,
		Job:    &job.JobService{Client: asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:1"})},
	}
	svc := NewResultService(srv, store, users)

	updated, err := svc.UpdateEstado(context.Background(), 10, "ENTREGADO")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEntregado, updated.Estado)
	assert.Equal(t, 1, users.FindByIDCalls)
}

func TestResultDeleteMapsMissingRowToNotFound(t *testing.T) {
	store := &mockResultStore{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return pgx.ErrNoRows
		},
	}
	svc := NewResultService(newTestServer(), store, nil)

	err := svc.Delete(context.Background(), 8)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Resultado no encontrado con ID: 8", httpErr.Message)
}
