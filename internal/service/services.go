// Package service contains the business logic of the three registries.
//
// It sits between the handler and repository layers: handlers deliver
// validated payloads, services enforce the domain rules (uniqueness checks,
// status lifecycle, soft-delete semantics), and repositories persist rows.
//
// Services depend on small store interfaces rather than the concrete
// repository types so tests can substitute function-field mocks.
package service

import (
	"github.com/clinilab/clinilab/internal/lib/job"
	"github.com/clinilab/clinilab/internal/repository"
	"github.com/clinilab/clinilab/internal/server"
)

type Services struct {
	Laboratory *LaboratoryService
	Result     *ResultService
	User       *UserService
	Job        *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Laboratory: NewLaboratoryService(s, repos.Laboratory),
		Result:     NewResultService(s, repos.Result, repos.User),
		User:       NewUserService(s, repos.User),
		Job:        s.Job,
	}, nil
}
