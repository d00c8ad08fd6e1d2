package transport

import (
	"fmt"
)

// BadRequestAlertError is a client-side failure with a machine-readable
// error key scoped to an entity, rendered by the server error handler as
// a 400 with a structured body.
type BadRequestAlertError struct {
	EntityName string
	ErrorKey   string
	Message    string
}

func (e *BadRequestAlertError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.EntityName, e.ErrorKey, e.Message)
}

func NewBadRequestAlert(entityName, errorKey, message string) *BadRequestAlertError {
	return &BadRequestAlertError{
		EntityName: entityName,
		ErrorKey:   errorKey,
		Message:    message,
	}
}
