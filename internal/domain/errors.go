package domain

import "errors"

// Sentinel errors shared across repositories and services. The HTTP layer
// maps them onto status codes; nothing below internal/api may import net/http.
var (
	// ErrNotFound is returned when a farmer, equipment item, booking or
	// maintenance record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEquipmentNotAvailable is returned when a booking is attempted
	// against equipment that is absent or not in the available state.
	ErrEquipmentNotAvailable = errors.New("equipment not available")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
