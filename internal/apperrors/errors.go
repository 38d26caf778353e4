// Package apperrors defines the error categories the rest of the backend
// works with. Repositories translate storage failures into these values and
// controllers translate them into HTTP responses, so vendor-specific error
// codes never travel past the database layer.
package apperrors

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrDuplicate means an insert or update hit a unique constraint.
	ErrDuplicate = errors.New("valor duplicado")

	// ErrReferenced means a delete was blocked because other rows still
	// reference the target (foreign-key protection).
	ErrReferenced = errors.New("registro referenciado por otros datos")

	// ErrConnection means the database could not be reached at all.
	ErrConnection = errors.New("error de conexión a la base de datos")
)

// ValidationError is a request-level validation failure. Its message is safe
// to show to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the given client-facing message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
