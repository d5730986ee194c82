package repository

import (
	"context"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// laboratoryColumns is the canonical select list; every scan helper below
// expects columns in exactly this order.
const laboratoryColumns = `id, nombre, tipo, direccion, telefono, email, especialidades,
	horario_atencion, activo, capacidad_diaria, fecha_creacion, fecha_actualizacion`

// LaboratoryRepository owns row access for the laboratorios table.
type LaboratoryRepository struct {
	pool *pgxpool.Pool
}

func NewLaboratoryRepository(s *server.Server) *LaboratoryRepository {
	return &LaboratoryRepository{pool: s.DB.Pool}
}

func scanLaboratory(row pgx.Row) (*domain.Laboratory, error) {
	var l domain.Laboratory
	err := row.Scan(
		&l.ID, &l.Nombre, &l.Tipo, &l.Direccion, &l.Telefono, &l.Email,
		&l.Especialidades, &l.HorarioAtencion, &l.Activo, &l.CapacidadDiaria,
		&l.FechaCreacion, &l.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LaboratoryRepository) queryLaboratories(ctx context.Context, sql string, args ...any) ([]domain.Laboratory, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query laboratorios")
	}
	defer rows.Close()

	laboratories := make([]domain.Laboratory, 0)
	for rows.Next() {
		l, err := scanLaboratory(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan laboratorio")
		}
		laboratories = append(laboratories, *l)
	}
	return laboratories, rows.Err()
}

func (r *LaboratoryRepository) FindAll(ctx context.Context) ([]domain.Laboratory, error) {
	return r.queryLaboratories(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios ORDER BY id`)
}

func (r *LaboratoryRepository) FindActive(ctx context.Context) ([]domain.Laboratory, error) {
	return r.queryLaboratories(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios WHERE activo ORDER BY id`)
}

// FindAvailable returns active laboratories that still have daily capacity.
func (r *LaboratoryRepository) FindAvailable(ctx context.Context) ([]domain.Laboratory, error) {
	return r.queryLaboratories(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios
		 WHERE activo AND capacidad_diaria > 0 ORDER BY id`)
}

// FindByID returns pgx.ErrNoRows when the id is absent.
func (r *LaboratoryRepository) FindByID(ctx context.Context, id int64) (*domain.Laboratory, error) {
	return scanLaboratory(r.pool.QueryRow(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios WHERE id = $1`, id))
}

func (r *LaboratoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM laboratorios WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// Create inserts the laboratory and fills in the generated id and the
// repository-stamped timestamps.
func (r *LaboratoryRepository) Create(ctx context.Context, l *domain.Laboratory) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO laboratorios
		 (nombre, tipo, direccion, telefono, email, especialidades, horario_atencion, activo, capacidad_diaria)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, fecha_creacion, fecha_actualizacion`,
		l.Nombre, l.Tipo, l.Direccion, l.Telefono, l.Email,
		l.Especialidades, l.HorarioAtencion, l.Activo, l.CapacidadDiaria,
	).Scan(&l.ID, &l.FechaCreacion, &l.FechaActualizacion)
}

// Update replaces all mutable fields. Returns pgx.ErrNoRows when the id is
// absent; fecha_actualizacion is stamped here, never taken from the caller.
func (r *LaboratoryRepository) Update(ctx context.Context, l *domain.Laboratory) error {
	return r.pool.QueryRow(ctx,
		`UPDATE laboratorios SET
		 nombre = $1, tipo = $2, direccion = $3, telefono = $4, email = $5,
		 especialidades = $6, horario_atencion = $7, activo = $8, capacidad_diaria = $9,
		 fecha_actualizacion = now()
		 WHERE id = $10
		 RETURNING fecha_creacion, fecha_actualizacion`,
		l.Nombre, l.Tipo, l.Direccion, l.Telefono, l.Email,
		l.Especialidades, l.HorarioAtencion, l.Activo, l.CapacidadDiaria, l.ID,
	).Scan(&l.FechaCreacion, &l.FechaActualizacion)
}

// SetActive flips the soft-delete flag and returns the updated row, or
// pgx.ErrNoRows when the id is absent. Deactivation and reactivation share
// this method; the service layer keeps them as distinct operations.
func (r *LaboratoryRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.Laboratory, error) {
	return scanLaboratory(r.pool.QueryRow(ctx,
		`UPDATE laboratorios SET activo = $1, fecha_actualizacion = now()
		 WHERE id = $2
		 RETURNING `+laboratoryColumns, active, id))
}

// HardDelete removes the row permanently. Returns pgx.ErrNoRows when the id
// is absent so the caller can answer 404 instead of silently succeeding.
func (r *LaboratoryRepository) HardDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM laboratorios WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete laboratorio")
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindByTipo matches the category exactly, active laboratories only.
func (r *LaboratoryRepository) FindByTipo(ctx context.Context, tipo string) ([]domain.Laboratory, error) {
	return r.queryLaboratories(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios
		 WHERE tipo = $1 AND activo ORDER BY id`, tipo)
}

// SearchByNombre does a case-insensitive substring match on the name.
func (r *LaboratoryRepository) SearchByNombre(ctx context.Context, nombre string) ([]domain.Laboratory, error) {
	return r.queryLaboratories(ctx,
		`SELECT `+laboratoryColumns+` FROM laboratorios
		 WHERE nombre ILIKE '%' || $1 || '%' ORDER BY id`, nombre)
}
