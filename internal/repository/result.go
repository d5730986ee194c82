package repository

import (
	"context"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const resultColumns = `id, paciente_id, paciente_nombre, medico_id, medico_nombre, laboratorio,
	tipo_analisis, descripcion, resultado_detalle, estado, fecha_analisis, fecha_entrega,
	observaciones, valores_referencia, fecha_registro, fecha_actualizacion`

// ResultRepository owns row access for the resultados table.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(s *server.Server) *ResultRepository {
	return &ResultRepository{pool: s.DB.Pool}
}

func scanResult(row pgx.Row) (*domain.Result, error) {
	var res domain.Result
	err := row.Scan(
		&res.ID, &res.PacienteID, &res.PacienteNombre, &res.MedicoID, &res.MedicoNombre,
		&res.Laboratorio, &res.TipoAnalisis, &res.Descripcion, &res.ResultadoDetalle,
		&res.Estado, &res.FechaAnalisis, &res.FechaEntrega,
		&res.Observaciones, &res.ValoresReferencia,
		&res.FechaRegistro, &res.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResultRepository) queryResults(ctx context.Context, sql string, args ...any) ([]domain.Result, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query resultados")
	}
	defer rows.Close()

	results := make([]domain.Result, 0)
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan resultado")
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados ORDER BY id`)
}

// FindByID returns pgx.ErrNoRows when the id is absent.
func (r *ResultRepository) FindByID(ctx context.Context, id int64) (*domain.Result, error) {
	return scanResult(r.pool.QueryRow(ctx,
		`SELECT `+resultColumns+` FROM resultados WHERE id = $1`, id))
}

func (r *ResultRepository) FindByPaciente(ctx context.Context, pacienteID int64) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados WHERE paciente_id = $1 ORDER BY id`, pacienteID)
}

func (r *ResultRepository) FindByMedico(ctx context.Context, medicoID int64) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados WHERE medico_id = $1 ORDER BY id`, medicoID)
}

// FindByLaboratorio matches the denormalized laboratory name exactly; the
// column is free text, not a foreign key.
func (r *ResultRepository) FindByLaboratorio(ctx context.Context, laboratorio string) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados WHERE laboratorio = $1 ORDER BY id`, laboratorio)
}

func (r *ResultRepository) FindByEstado(ctx context.Context, estado domain.ResultStatus) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados WHERE estado = $1 ORDER BY id`, estado)
}

// FindByFechaRange returns results whose analysis date falls in the
// inclusive [inicio, fin] range.
func (r *ResultRepository) FindByFechaRange(ctx context.Context, inicio, fin domain.Date) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados
		 WHERE fecha_analisis BETWEEN $1 AND $2 ORDER BY id`, inicio, fin)
}

func (r *ResultRepository) FindByPacienteAndEstado(ctx context.Context, pacienteID int64, estado domain.ResultStatus) ([]domain.Result, error) {
	return r.queryResults(ctx,
		`SELECT `+resultColumns+` FROM resultados
		 WHERE paciente_id = $1 AND estado = $2 ORDER BY id`, pacienteID, estado)
}

// Create inserts the result and fills in the generated id plus the
// repository-stamped timestamps.
func (r *ResultRepository) Create(ctx context.Context, res *domain.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO resultados
		 (paciente_id, paciente_nombre, medico_id, medico_nombre, laboratorio, tipo_analisis,
		  descripcion, resultado_detalle, estado, fecha_analisis, fecha_entrega, observaciones, valores_referencia)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, fecha_registro, fecha_actualizacion`,
		res.PacienteID, res.PacienteNombre, res.MedicoID, res.MedicoNombre,
		res.Laboratorio, res.TipoAnalisis, res.Descripcion, res.ResultadoDetalle,
		res.Estado, res.FechaAnalisis, res.FechaEntrega, res.Observaciones, res.ValoresReferencia,
	).Scan(&res.ID, &res.FechaRegistro, &res.FechaActualizacion)
}

// Update replaces all mutable fields including estado and fecha_entrega;
// the stamping rule for fecha_entrega lives in the service layer. Returns
// pgx.ErrNoRows when the id is absent.
func (r *ResultRepository) Update(ctx context.Context, res *domain.Result) error {
	return r.pool.QueryRow(ctx,
		`UPDATE resultados SET
		 paciente_id = $1, paciente_nombre = $2, medico_id = $3, medico_nombre = $4,
		 laboratorio = $5, tipo_analisis = $6, descripcion = $7, resultado_detalle = $8,
		 estado = $9, fecha_analisis = $10, fecha_entrega = $11,
		 observaciones = $12, valores_referencia = $13,
		 fecha_actualizacion = now()
		 WHERE id = $14
		 RETURNING fecha_registro, fecha_actualizacion`,
		res.PacienteID, res.PacienteNombre, res.MedicoID, res.MedicoNombre,
		res.Laboratorio, res.TipoAnalisis, res.Descripcion, res.ResultadoDetalle,
		res.Estado, res.FechaAnalisis, res.FechaEntrega,
		res.Observaciones, res.ValoresReferencia, res.ID,
	).Scan(&res.FechaRegistro, &res.FechaActualizacion)
}

// UpdateEstado persists a status-only change. fechaEntrega carries the
// already-decided delivery date (nil leaves the column untouched via
// COALESCE, so an existing date is never overwritten).
func (r *ResultRepository) UpdateEstado(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
	return scanResult(r.pool.QueryRow(ctx,
		`UPDATE resultados SET
		 estado = $1, fecha_entrega = COALESCE(fecha_entrega, $2), fecha_actualizacion = now()
		 WHERE id = $3
		 RETURNING `+resultColumns, estado, fechaEntrega, id))
}

// Delete removes the row. Returns pgx.ErrNoRows when the id is absent.
func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resultados WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete resultado")
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
