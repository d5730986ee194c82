package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code categorizes Postgres SQLSTATE values into the violations the
// application cares about.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// MapCode maps a SQLSTATE string to a Code.
//
// SQLSTATE class 23 is "integrity constraint violation"; the four concrete
// states below are the ones a single-table CRUD schema can produce.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	return Other
}

// Error is the normalized form of a pgconn.PgError.
type Error struct {
	Code           Code
	DatabaseCode   string // original SQLSTATE
	Message        string // DB's main message
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error // original driver error, kept for Unwrap
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr: %s (SQLSTATE %s)", e.Message, e.DatabaseCode)
}

// Unwrap exposes the original driver error to errors.As/Is.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError normalizes a raw Postgres error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
