package services

import "errors"

var (
	// ErrNotFound reports a well-formed reference to a record that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateRequest reports a connection request that already
	// exists for the same (partnerId, senderEmail) pair.
	ErrDuplicateRequest = errors.New("request already sent")
)

// ValidationError reports malformed input: a missing required field or a
// syntactically invalid id.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
