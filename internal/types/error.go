package types

import (
	"fmt"
	"sort"
	"strings"
)

// CustomError is an HTTP-level failure rendered by the global error handler
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ValidationError carries field-level detail, keyed by the request field name
type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

// NewValidationError returns an empty ValidationError ready for Add
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a problem with field. The first problem per field wins.
func (e *ValidationError) Add(field, problem string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = problem
	}
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns nil when nothing failed, so callers can `return v.OrNil()`
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
