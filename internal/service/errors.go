package service

import (
	"fmt"

	"github.com/ninebudget/ninebudget/internal/storage/sqlconfig"
)

// ErrNotFound is returned when the addressed account, budget or category does not exist.
var ErrNotFound = sqlconfig.ErrNotFound

// ValidationError reports a request field the service refuses.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
