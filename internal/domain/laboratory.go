package domain

import "time"

// Laboratory is the organization record managed by the laboratorios registry.
//
// Activo implements the soft-delete flag: deactivation keeps the row, a
// permanent delete removes it. FechaCreacion/FechaActualizacion are stamped
// by the repository on insert/update, never taken from the caller.
type Laboratory struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Tipo               string    `json:"tipo"`
	Direccion          string    `json:"direccion"`
	Telefono           string    `json:"telefono"`
	Email              string    `json:"email"`
	Especialidades     string    `json:"especialidades"`
	HorarioAtencion    string    `json:"horarioAtencion"`
	Activo             bool      `json:"activo"`
	CapacidadDiaria    int       `json:"capacidadDiaria"`
	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// Available reports whether the laboratory can take new work:
// it is active and has daily capacity left to offer.
func (l *Laboratory) Available() bool {
	return l.Activo && l.CapacidadDiaria > 0
}
