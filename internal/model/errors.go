package model

import (
	"fmt"
	"strings"
)

// ValidationError represents a single failed constraint on one input field
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ValidationErrors aggregates every constraint violation found in one input.
// Validation never produces a partial invoice: either the record is fully
// valid or the caller receives the complete list of failures.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e), strings.Join(msgs, "; "))
}

// Fields returns the failing field paths in report order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, ve := range e {
		fields[i] = ve.Field
	}
	return fields
}

// AssetError represents a failure to fetch or decode the business logo.
// It is recoverable: the renderer omits the image and continues.
type AssetError struct {
	Ref     string
	Message string
	Cause   error
}

func (e *AssetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("asset %s: %s (%v)", e.Ref, e.Message, e.Cause)
	}
	return fmt.Sprintf("asset %s: %s", e.Ref, e.Message)
}

func (e *AssetError) Unwrap() error {
	return e.Cause
}

// NewAssetError creates a new asset error
func NewAssetError(ref, message string, cause error) *AssetError {
	return &AssetError{
		Ref:     ref,
		Message: message,
		Cause:   cause,
	}
}

// WriteError represents a failure to create or write the output document.
// It is fatal and aborts the whole operation.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write %s: %s (%v)", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new write error
func NewWriteError(path, message string, cause error) *WriteError {
	return &WriteError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
