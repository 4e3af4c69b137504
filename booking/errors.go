package booking

import "errors"

// ValidationError is a user-correctable rejection tied to a request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrConflict is returned when a booking loses the race at the storage
	// layer. The caller retries manually against refreshed availability.
	ErrConflict = errors.New("booking conflict: slot already reserved")

	// ErrSlotNotFound is returned when the requested slot does not exist.
	ErrSlotNotFound = errors.New("availability slot not found")
)

// IsValidation reports whether err is a field-tagged validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
