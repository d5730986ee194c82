package service

import (
	"context"
	"testing"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaboratoryCreateRejectsDuplicateEmailWithoutWriting(t *testing.T) {
	store := &mockLaboratoryStore{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	err := svc.Create(context.Background(), &domain.Laboratory{Email: "lab@clinilab.cl"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeDuplicateKey, httpErr.Code)
	assert.Equal(t, "Ya existe un laboratorio con ese email", httpErr.Message)
	assert.Equal(t, 0, store.CreateCalls)
}

func TestLaboratoryCreatePassesThroughWhenEmailFree(t *testing.T) {
	store := &mockLaboratoryStore{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	err := svc.Create(context.Background(), &domain.Laboratory{Email: "nuevo@clinilab.cl"})

	assert.NoError(t, err)
	assert.Equal(t, 1, store.CreateCalls)
}

func TestLaboratoryGetMapsMissingRowToNotFound(t *testing.T) {
	store := &mockLaboratoryStore{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Laboratory, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	_, err := svc.Get(context.Background(), 42)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Laboratorio no encontrado con id: 42", httpErr.Message)
}

func TestLaboratoryDeactivateFlipsFlagOff(t *testing.T) {
	var gotActive *bool
	store := &mockLaboratoryStore{
		SetActiveFunc: func(ctx context.Context, id int64, active bool) (*domain.Laboratory, error) {
			gotActive = &active
			return &domain.Laboratory{ID: id, Activo: active}, nil
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	require.NoError(t, svc.Deactivate(context.Background(), 7))
	require.NotNil(t, gotActive)
	assert.False(t, *gotActive)
}

func TestLaboratoryActivateReturnsUpdatedRow(t *testing.T) {
	store := &mockLaboratoryStore{
		SetActiveFunc: func(ctx context.Context, id int64, active bool) (*domain.Laboratory, error) {
			return &domain.Laboratory{ID: id, Activo: active}, nil
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	lab, err := svc.Activate(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, lab.Activo)
	assert.Equal(t, int64(7), lab.ID)
}

func TestLaboratoryDeletePermanentMapsMissingRowToNotFound(t *testing.T) {
	store := &mockLaboratoryStore{
		HardDeleteFunc: func(ctx context.Context, id int64) error {
			return pgx.ErrNoRows
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	err := svc.DeletePermanent(context.Background(), 99)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Laboratorio no encontrado con id: 99", httpErr.Message)
}

func TestLaboratoryUpdateForcesPathID(t *testing.T) {
	var gotID int64
	store := &mockLaboratoryStore{
		UpdateFunc: func(ctx context.Context, l *domain.Laboratory) error {
			gotID = l.ID
			return nil
		},
	}
	svc := NewLaboratoryService(newTestServer(), store)

	// The payload id must never win over the path id.
	err := svc.Update(context.Background(), 5, &domain.Laboratory{ID: 999, Nombre: "Central"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), gotID)
}
