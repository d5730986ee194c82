// Package repository handles all interactions with the database.
//
// It contains the raw SQL for the three registries and methods to fetch,
// persist, or update rows, keeping SQL out of the service layer. Lookup
// misses surface as pgx.ErrNoRows so services can decide the status and
// message; constraint violations bubble up raw for the sqlerr backstop.
package repository

import (
	"github.com/clinilab/clinilab/internal/server"
)

// Repositories is the container for all repository instances, built once
// and handed to the service layer.
type Repositories struct {
	Laboratory *LaboratoryRepository
	Result     *ResultRepository
	User       *UserRepository
}

// NewRepositories constructs every repository from the shared pgx pool on
// the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Laboratory: NewLaboratoryRepository(s),
		Result:     NewResultRepository(s),
		User:       NewUserRepository(s),
	}
}
