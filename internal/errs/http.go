package errs

import (
	"net/http"
)

// Taxonomy codes. Kept distinct from raw status text so clients can switch
// on the failure kind, not just the status.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeDuplicateKey = "DUPLICATE_KEY"
	CodeInvalidState = "INVALID_STATE"
)

// NewValidationError creates a 400 for a missing/malformed required field or
// an unrecognized enum token. fieldErrors may be nil.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewDuplicateKeyError creates a 400 for a uniqueness violation caught at the
// domain check or translated from the storage constraint backstop.
func NewDuplicateKeyError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeDuplicateKey,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidStateError creates a 400 for a status token outside the result
// lifecycle's closed set.
func NewInvalidStateError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeInvalidState,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewTooManyRequestsError creates a 429 for a rate-limited caller.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewNotFoundError creates a 404 for an id lookup miss.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewUnauthorizedError creates a 401 for failed authentication. The two
// messages the login path uses ("Credenciales inválidas", "Usuario inactivo")
// are the only detail a client ever sees.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewInternalServerError creates a generic 500. The message is the status
// text on purpose: internal fault detail stays in the logs, not the response.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
