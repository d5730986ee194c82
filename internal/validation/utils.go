package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/clinilab/clinilab/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance request types run their tags
// through. validator.Validate is safe for concurrent use and caches struct
// metadata, so one instance serves the whole process.
var validate = validator.New()

// Struct runs tag validation on v with the shared validator instance.
// Request types call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern: a request struct with validator tags implements
// Validate() error by running validator.Struct on itself, returning
// validator.ValidationErrors (or CustomValidationErrors for rules tags
// cannot express, like closed enum sets).
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a field
// that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validación fallida"
}

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer so echo's Bind can populate it. On failure it
// returns a 400 *errs.HTTPError carrying field-level errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewValidationError("Cuerpo de la petición inválido", nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(msg, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors on failure.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		if customErrors, ok := err.(CustomValidationErrors); ok {
			for _, cerr := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: cerr.Field,
					Error: cerr.Message,
				})
			}
			return "Validación fallida", fieldErrors
		}
		return "Validación fallida", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, verr := range validationErrors {
		field := strings.ToLower(verr.Field())
		var msg string

		switch verr.Tag() {
		case "required":
			msg = "es obligatorio"

		case "min":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("debe tener al menos %s caracteres", verr.Param())
			} else {
				msg = fmt.Sprintf("debe ser al menos %s", verr.Param())
			}

		case "max":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("no debe superar %s caracteres", verr.Param())
			} else {
				msg = fmt.Sprintf("no debe superar %s", verr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("debe ser uno de: %s", verr.Param())

		case "email":
			msg = "debe ser un email válido"

		default:
			if verr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, verr.Tag(), verr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, verr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validación fallida", fieldErrors
}
