package repository

import (
	"context"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const userColumns = `id, nombre, apellido, email, password, rut, telefono, rol, activo,
	fecha_registro, fecha_actualizacion`

// UserRepository owns row access for the usuarios table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{pool: s.DB.Pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Password, &u.Rut,
		&u.Telefono, &u.Rol, &u.Activo,
		&u.FechaRegistro, &u.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) queryUsers(ctx context.Context, sql string, args ...any) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query usuarios")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan usuario")
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM usuarios ORDER BY id`)
}

// FindByID returns pgx.ErrNoRows when the id is absent.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id))
}

// FindByEmail backs both the lookup endpoint and the login path.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email))
}

func (r *UserRepository) FindByRol(ctx context.Context, rol domain.Role) ([]domain.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE rol = $1 ORDER BY id`, rol)
}

// FindActive treats a NULL activo as inactive, so only explicit TRUE rows
// are listed.
func (r *UserRepository) FindActive(ctx context.Context) ([]domain.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE activo ORDER BY id`)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE rut = $1)`, rut).Scan(&exists)
	return exists, err
}

// Create inserts the account and fills in the generated id and the
// repository-stamped timestamps.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO usuarios
		 (nombre, apellido, email, password, rut, telefono, rol, activo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, fecha_registro, fecha_actualizacion`,
		u.Nombre, u.Apellido, u.Email, u.Password, u.Rut, u.Telefono, u.Rol, u.Activo,
	).Scan(&u.ID, &u.FechaRegistro, &u.FechaActualizacion)
}

// Update replaces all mutable fields, password included (the keep-if-empty
// rule is applied in the service before this runs). Returns pgx.ErrNoRows
// when the id is absent.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.pool.QueryRow(ctx,
		`UPDATE usuarios SET
		 nombre = $1, apellido = $2, email = $3, password = $4, rut = $5,
		 telefono = $6, rol = $7, activo = $8,
		 fecha_actualizacion = now()
		 WHERE id = $9
		 RETURNING fecha_registro, fecha_actualizacion`,
		u.Nombre, u.Apellido, u.Email, u.Password, u.Rut, u.Telefono, u.Rol, u.Activo, u.ID,
	).Scan(&u.FechaRegistro, &u.FechaActualizacion)
}

// SetActive flips the active flag and returns the updated account, or
// pgx.ErrNoRows when the id is absent.
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`UPDATE usuarios SET activo = $1, fecha_actualizacion = now()
		 WHERE id = $2
		 RETURNING `+userColumns, active, id))
}

// Delete removes the row. Returns pgx.ErrNoRows when the id is absent.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete usuario")
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
