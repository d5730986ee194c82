package service

import (
	"context"
	"fmt"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/errs"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRol(ctx context.Context, rol domain.Role) ([]domain.User, error)
	FindActive(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRut(ctx context.Context, rut string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id int64, active bool) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService implements the usuarios registry rules: the ordered
// email-then-rut uniqueness checks and the plaintext login.
type UserService struct {
	server *server.Server
	repo   UserStore
}

func NewUserService(s *server.Server, repo UserStore) *UserService {
	return &UserService{
		server: s,
		repo:   repo,
	}
}

func userNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Usuario no encontrado con ID: %d", id))
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(fmt.Sprintf("Usuario no encontrado con email: %s", email))
		}
		return nil, err
	}
	return user, nil
}

// ListByRol rejects unknown role tokens with a ValidationError naming the
// valid set; tokens are case-insensitive.
func (s *UserService) ListByRol(ctx context.Context, token string) ([]domain.User, error) {
	rol, err := domain.ParseRole(token)
	if err != nil {
		return nil, errs.NewValidationError(err.Error(), nil)
	}
	return s.repo.FindByRol(ctx, rol)
}

func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindActive(ctx)
}

// Create enforces the two uniqueness constraints in order: the email check
// short-circuits before the rut check, each with its own message. Both are
// read-then-write; the storage constraint backstops a concurrent race.
func (s *UserService) Create(ctx context.Context, user *domain.User) error {
	exists, err := s.repo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewDuplicateKeyError("El email ya está registrado")
	}

	exists, err = s.repo.ExistsByRut(ctx, user.Rut)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewDuplicateKeyError("El RUT ya está registrado")
	}

	return s.repo.Create(ctx, user)
}

// Update replaces the stored account. Uniqueness is re-checked only for the
// identifiers that actually changed, and an empty incoming password keeps
// the stored one; a non-empty password overwrites verbatim.
func (s *UserService) Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userNotFound(id)
		}
		return nil, err
	}

	if user.Email != existing.Email {
		exists, err := s.repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewDuplicateKeyError("El email ya está registrado")
		}
	}

	if user.Rut != existing.Rut {
		exists, err := s.repo.ExistsByRut(ctx, user.Rut)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.NewDuplicateKeyError("El RUT ya está registrado")
		}
	}

	if user.Password == "" {
		user.Password = existing.Password
	}

	user.ID = id
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate performs the registry's plaintext login. Order matters: the
// password is compared before the active flag is consulted, so an inactive
// account is only ever revealed to a caller who already has valid
// credentials. Unknown email and wrong password share one message.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUnauthorizedError("Credenciales inválidas")
		}
		return nil, err
	}

	if user.Password != password {
		return nil, errs.NewUnauthorizedError("Credenciales inválidas")
	}

	if !user.IsActive() {
		return nil, errs.NewUnauthorizedError("Usuario inactivo")
	}

	return user, nil
}

// Activate flips the active flag on.
func (s *UserService) Activate(ctx context.Context, id int64) (*domain.User, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate flips the active flag off; the account stays listed but can
// no longer authenticate.
func (s *UserService) Deactivate(ctx context.Context, id int64) (*domain.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) setActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userNotFound(id)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the account row permanently.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return userNotFound(id)
		}
		return err
	}
	return nil
}
