package sqlerr

import (
	"testing"

	"github.com/clinilab/clinilab/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewDuplicateKeyError("Ya existe un laboratorio con ese email")

	got := HandleError(errors.Wrap(original, "creating laboratory"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, original.Message, httpErr.Message)
}

func TestHandleErrorTranslatesUniqueViolations(t *testing.T) {
	cases := []struct {
		name       string
		table      string
		constraint string
		want       string
	}{
		{"laboratory email", "laboratorios", "laboratorios_email_key", "Ya existe un laboratorio con ese email"},
		{"user email", "usuarios", "usuarios_email_key", "El email ya está registrado"},
		{"user rut", "usuarios", "usuarios_rut_key", "El RUT ya está registrado"},
		{"unknown constraint", "otros", "otros_campo_key", "El registro ya existe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           "23505",
				TableName:      tc.table,
				ConstraintName: tc.constraint,
			}

			got := HandleError(pgErr)

			var httpErr *errs.HTTPError
			require.ErrorAs(t, got, &httpErr)
			assert.Equal(t, errs.CodeDuplicateKey, httpErr.Code)
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, tc.want, httpErr.Message)
		})
	}
}

func TestHandleErrorTranslatesNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "usuarios", ColumnName: "Email"}

	got := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, errs.CodeValidation, httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "es obligatorio", httpErr.Errors[0].Error)
}

func TestHandleErrorTranslatesNoRowsToNotFound(t *testing.T) {
	got := HandleError(errors.Wrap(pgx.ErrNoRows, "loading row"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Registro no encontrado", httpErr.Message)
}

func TestHandleErrorHidesUnknownFaults(t *testing.T) {
	got := HandleError(errors.New("connection reset by peer"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, 500, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "connection reset")
}

func TestUniqueConstraintColumn(t *testing.T) {
	assert.Equal(t, "email", uniqueConstraintColumn("usuarios_email_key"))
	assert.Equal(t, "rut", uniqueConstraintColumn("usuarios_rut_key"))
	assert.Equal(t, "email", uniqueConstraintColumn("unique_laboratorios_email"))
	assert.Equal(t, "", uniqueConstraintColumn(""))
}
