package entities

import (
	"errors"
	"fmt"
)

// Ошибки доменного уровня.
var (
	ErrValidation      = errors.New("validation error")
	ErrContactNotFound = errors.New("contact not found")
	ErrPhoneNotFound   = errors.New("phone not found")
)

// ValidationError описывает отклоненное значение поля.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
