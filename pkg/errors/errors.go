package custom_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d no encontrado", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnauthorizedError covers a missing credential and an insufficient role
// alike; both answer 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

type ReferentialIntegrityError struct {
	Message string
}

func (e *ReferentialIntegrityError) Error() string {
	return e.Message
}

func NewReferentialIntegrityError(message string) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Message: message}
}

type StorageError struct {
	message string
	code    string // PostgreSQL error code, empty when not a pq error
}

func (e *StorageError) Error() string {
	if e.code == "" {
		return e.message
	}
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

// WrapDBError classifies a persistence failure by its SQLSTATE code. Constraint
// violations become domain errors so handlers map them to 400 instead of 500.
func WrapDBError(err error, message string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return &StorageError{message: fmt.Sprintf("%s: %v", message, err)}
	}

	switch pqErr.Code {
	case "23503": // foreign_key_violation
		return NewReferentialIntegrityError(message + ": el recurso está referenciado por otros registros")
	case "23502", "23514": // not_null_violation, check_violation
		return NewValidationError(message + ": " + pqErr.Message)
	case "23505": // unique_violation
		return NewValidationError(message + ": el valor ya está registrado")
	default:
		return &StorageError{message: message, code: string(pqErr.Code)}
	}
}

// HTTPStatus translates a domain error into the status the request layer
// should answer with.
func HTTPStatus(err error) int {
	var (
		validation   *ValidationError
		notFound     *NotFoundError
		referential  *ReferentialIntegrityError
		unauthorized *UnauthorizedError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &referential):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
