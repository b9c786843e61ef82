package usecase

import "errors"

// Error kinds the HTTP layer maps to status codes.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

// ServiceError carries a client-safe message alongside its kind.
type ServiceError struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *ServiceError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}

func validationError(message string, fields map[string]string) error {
	return &ServiceError{Kind: ErrValidation, Message: message, Fields: fields}
}

func notFoundError(message string) error {
	return &ServiceError{Kind: ErrNotFound, Message: message}
}

func conflictError(message string) error {
	return &ServiceError{Kind: ErrConflict, Message: message}
}
