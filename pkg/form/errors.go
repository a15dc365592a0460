package form

import "errors"

// ErrNoPrompter is returned when Run is called without a prompt collaborator.
var ErrNoPrompter = errors.New("form: prompter is nil")

// ValidationError is returned by field validators. Its message is meant for
// the operator and is shown verbatim when the field is asked again.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
