package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role classifies a user account. Closed set, parsed case-insensitively.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMedico   Role = "MEDICO"
	RolePaciente Role = "PACIENTE"
)

// Roles lists the valid role tokens.
var Roles = []Role{RoleAdmin, RoleMedico, RolePaciente}

// ParseRole normalizes a client-supplied role token. Unrecognized tokens
// fail with an error naming the valid set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMedico:
		return RoleMedico, nil
	case RolePaciente:
		return RolePaciente, nil
	}
	tokens := make([]string, len(Roles))
	for i, r := range Roles {
		tokens[i] = string(r)
	}
	return "", fmt.Errorf("rol inválido: %q (debe ser uno de: %s)", s, strings.Join(tokens, ", "))
}

// User is a registry account.
//
// Password is stored and compared as plain text. That reproduces the system
// this registry replaces; it is NOT how credentials should be handled and
// any deployment beyond a compatibility port needs a hashing scheme here.
// The field never serializes into responses.
//
// Activo is a pointer because the legacy schema allowed NULL; a nil or
// false value both mean the account cannot log in.
type User struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Apellido           string    `json:"apellido"`
	Email              string    `json:"email"`
	Password           string    `json:"-"`
	Rut                string    `json:"rut"`
	Telefono           string    `json:"telefono"`
	Rol                Role      `json:"rol"`
	Activo             *bool     `json:"activo"`
	FechaRegistro      time.Time `json:"fechaRegistro"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// IsActive reports whether the account may authenticate.
// A NULL activo column counts as inactive.
func (u *User) IsActive() bool {
	return u.Activo != nil && *u.Activo
}
