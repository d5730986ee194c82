package sqlerr

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/clinilab/clinilab/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// duplicateMessages maps table/column pairs to the exact duplicate-key
// message the domain layer uses on its fast-path check, so a constraint
// violation that wins a race reads identically to the client.
var duplicateMessages = map[string]map[string]string{
	"laboratorios": {
		"email": "Ya existe un laboratorio con ese email",
	},
	"usuarios": {
		"email": "El email ya está registrado",
		"rut":   "El RUT ya está registrado",
	},
}

// uniqueConstraintColumn extracts the column name from a unique constraint
// name following the postgres default "<table>_<column>_key" convention,
// or the explicit "unique_<table>_<column>" convention.
var constraintColumnRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

func uniqueConstraintColumn(constraintName string) string {
	if constraintName == "" {
		return ""
	}
	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}
	if matches := constraintColumnRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// duplicateKeyMessage picks the client-facing message for a unique
// violation on the given table/constraint.
func duplicateKeyMessage(tableName, constraintName string) string {
	column := uniqueConstraintColumn(constraintName)
	if byColumn, ok := duplicateMessages[tableName]; ok {
		if msg, ok := byColumn[column]; ok {
			return msg
		}
	}
	return "El registro ya existe"
}

// ErrCode reports the mapped Code for err, or Other when err does not
// unwrap into an *Error.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// HandleError converts a low-level database error into an application error.
//
//   - *errs.HTTPError passes through untouched (no double wrapping)
//   - unique violations become DuplicateKey with the domain message
//   - not-null and check violations become ValidationError
//   - pgx.ErrNoRows / sql.ErrNoRows become NotFound
//   - everything else becomes a generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewDuplicateKeyError(duplicateKeyMessage(sqlErr.TableName, sqlErr.ConstraintName))

		case NotNullViolation:
			fieldErrors := []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "es obligatorio",
			}}
			return errs.NewValidationError("Validación fallida", fieldErrors)

		case CheckViolation, ForeignKeyViolation:
			return errs.NewValidationError("Validación fallida", nil)

		default:
			// Unknown DB faults must not leak detail to clients.
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Registro no encontrado")
	}

	return errs.NewInternalServerError()
}
