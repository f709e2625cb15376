package services

import (
	"strings"

	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

// ValidationError reports rejected input before any write happens.
type ValidationError struct {
	Fields serrors.ValidationErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: serrors.ValidationErrors{field: msg}}
}
