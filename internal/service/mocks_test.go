package service

import (
	"context"
	"errors"

	"github.com/clinilab/clinilab/internal/domain"
	"github.com/clinilab/clinilab/internal/server"
	"github.com/rs/zerolog"
)

// newTestServer builds the minimal server container the services need in
// tests: a no-op logger and no job queue, so notification enqueueing is a
// silent no-op unless a test wires it explicitly.
func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Logger: &logger}
}

// Hand-rolled function-field mocks: each store method delegates to an
// optional func field and counts its calls, so a test can both script
// behavior and assert what was (or was not) reached.

var errMockNotScripted = errors.New("mock: method not scripted")

var _ LaboratoryStore = (*mockLaboratoryStore)(nil)

type mockLaboratoryStore struct {
	FindAllFunc        func(ctx context.Context) ([]domain.Laboratory, error)
	FindActiveFunc     func(ctx context.Context) ([]domain.Laboratory, error)
	FindAvailableFunc  func(ctx context.Context) ([]domain.Laboratory, error)
	FindByIDFunc       func(ctx context.Context, id int64) (*domain.Laboratory, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	CreateFunc         func(ctx context.Context, l *domain.Laboratory) error
	UpdateFunc         func(ctx context.Context, l *domain.Laboratory) error
	SetActiveFunc      func(ctx context.Context, id int64, active bool) (*domain.Laboratory, error)
	HardDeleteFunc     func(ctx context.Context, id int64) error
	FindByTipoFunc     func(ctx context.Context, tipo string) ([]domain.Laboratory, error)
	SearchByNombreFunc func(ctx context.Context, nombre string) ([]domain.Laboratory, error)

	CreateCalls    int
	SetActiveCalls int
}

func (m *mockLaboratoryStore) FindAll(ctx context.Context) ([]domain.Laboratory, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) FindActive(ctx context.Context) ([]domain.Laboratory, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) FindAvailable(ctx context.Context) ([]domain.Laboratory, error) {
	if m.FindAvailableFunc != nil {
		return m.FindAvailableFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) FindByID(ctx context.Context, id int64) (*domain.Laboratory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, errMockNotScripted
}

func (m *mockLaboratoryStore) Create(ctx context.Context, l *domain.Laboratory) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockLaboratoryStore) Update(ctx context.Context, l *domain.Laboratory) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return errMockNotScripted
}

func (m *mockLaboratoryStore) SetActive(ctx context.Context, id int64, active bool) (*domain.Laboratory, error) {
	m.SetActiveCalls++
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) HardDelete(ctx context.Context, id int64) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, id)
	}
	return errMockNotScripted
}

func (m *mockLaboratoryStore) FindByTipo(ctx context.Context, tipo string) ([]domain.Laboratory, error) {
	if m.FindByTipoFunc != nil {
		return m.FindByTipoFunc(ctx, tipo)
	}
	return nil, errMockNotScripted
}

func (m *mockLaboratoryStore) SearchByNombre(ctx context.Context, nombre string) ([]domain.Laboratory, error) {
	if m.SearchByNombreFunc != nil {
		return m.SearchByNombreFunc(ctx, nombre)
	}
	return nil, errMockNotScripted
}

var _ ResultStore = (*mockResultStore)(nil)

type mockResultStore struct {
	FindAllFunc                 func(ctx context.Context) ([]domain.Result, error)
	FindByIDFunc                func(ctx context.Context, id int64) (*domain.Result, error)
	FindByPacienteFunc          func(ctx context.Context, pacienteID int64) ([]domain.Result, error)
	FindByMedicoFunc            func(ctx context.Context, medicoID int64) ([]domain.Result, error)
	FindByLaboratorioFunc       func(ctx context.Context, laboratorio string) ([]domain.Result, error)
	FindByEstadoFunc            func(ctx context.Context, estado domain.ResultStatus) ([]domain.Result, error)
	FindByFechaRangeFunc        func(ctx context.Context, inicio, fin domain.Date) ([]domain.Result, error)
	FindByPacienteAndEstadoFunc func(ctx context.Context, pacienteID int64, estado domain.ResultStatus) ([]domain.Result, error)
	CreateFunc                  func(ctx context.Context, res *domain.Result) error
	UpdateFunc                  func(ctx context.Context, res *domain.Result) error
	UpdateEstadoFunc            func(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error)
	DeleteFunc                  func(ctx context.Context, id int64) error

	CreateCalls       int
	UpdateEstadoCalls int
	FindByEstadoCalls int
}

func (m *mockResultStore) FindAll(ctx context.Context) ([]domain.Result, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByID(ctx context.Context, id int64) (*domain.Result, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByPaciente(ctx context.Context, pacienteID int64) ([]domain.Result, error) {
	if m.FindByPacienteFunc != nil {
		return m.FindByPacienteFunc(ctx, pacienteID)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByMedico(ctx context.Context, medicoID int64) ([]domain.Result, error) {
	if m.FindByMedicoFunc != nil {
		return m.FindByMedicoFunc(ctx, medicoID)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByLaboratorio(ctx context.Context, laboratorio string) ([]domain.Result, error) {
	if m.FindByLaboratorioFunc != nil {
		return m.FindByLaboratorioFunc(ctx, laboratorio)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByEstado(ctx context.Context, estado domain.ResultStatus) ([]domain.Result, error) {
	m.FindByEstadoCalls++
	if m.FindByEstadoFunc != nil {
		return m.FindByEstadoFunc(ctx, estado)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByFechaRange(ctx context.Context, inicio, fin domain.Date) ([]domain.Result, error) {
	if m.FindByFechaRangeFunc != nil {
		return m.FindByFechaRangeFunc(ctx, inicio, fin)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) FindByPacienteAndEstado(ctx context.Context, pacienteID int64, estado domain.ResultStatus) ([]domain.Result, error) {
	if m.FindByPacienteAndEstadoFunc != nil {
		return m.FindByPacienteAndEstadoFunc(ctx, pacienteID, estado)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) Create(ctx context.Context, res *domain.Result) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, res)
	}
	return nil
}

func (m *mockResultStore) Update(ctx context.Context, res *domain.Result) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, res)
	}
	return errMockNotScripted
}

func (m *mockResultStore) UpdateEstado(ctx context.Context, id int64, estado domain.ResultStatus, fechaEntrega *domain.Date) (*domain.Result, error) {
	m.UpdateEstadoCalls++
	if m.UpdateEstadoFunc != nil {
		return m.UpdateEstadoFunc(ctx, id, estado, fechaEntrega)
	}
	return nil, errMockNotScripted
}

func (m *mockResultStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errMockNotScripted
}

var _ UserStore = (*mockUserStore)(nil)

type mockUserStore struct {
	FindAllFunc       func(ctx context.Context) ([]domain.User, error)
	FindByIDFunc      func(ctx context.Context, id int64) (*domain.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByRolFunc     func(ctx context.Context, rol domain.Role) ([]domain.User, error)
	FindActiveFunc    func(ctx context.Context) ([]domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ExistsByRutFunc   func(ctx context.Context, rut string) (bool, error)
	CreateFunc        func(ctx context.Context, u *domain.User) error
	UpdateFunc        func(ctx context.Context, u *domain.User) error
	SetActiveFunc     func(ctx context.Context, id int64, active bool) (*domain.User, error)
	DeleteFunc        func(ctx context.Context, id int64) error

	CreateCalls        int
	ExistsByEmailCalls int
	ExistsByRutCalls   int
}

func (m *mockUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) FindByRol(ctx context.Context, rol domain.Role) ([]domain.User, error) {
	if m.FindByRolFunc != nil {
		return m.FindByRolFunc(ctx, rol)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) FindActive(ctx context.Context) ([]domain.User, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.ExistsByEmailCalls++
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, errMockNotScripted
}

func (m *mockUserStore) ExistsByRut(ctx context.Context, rut string) (bool, error) {
	m.ExistsByRutCalls++
	if m.ExistsByRutFunc != nil {
		return m.ExistsByRutFunc(ctx, rut)
	}
	return false, errMockNotScripted
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserStore) Update(ctx context.Context, u *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return errMockNotScripted
}

func (m *mockUserStore) SetActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil, errMockNotScripted
}

func (m *mockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errMockNotScripted
}

var _ patientFinder = (*mockPatientFinder)(nil)

type mockPatientFinder struct {
	FindByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	FindByIDCalls int
}

func (m *mockPatientFinder) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	m.FindByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errMockNotScripted
}
