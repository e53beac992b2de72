package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a DomainError across layers.
type ErrorCode string

const (
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	CodeInvalidSession     ErrorCode = "INVALID_SESSION"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
)

// FieldError names a single invalid input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// DomainError is the error type shared by the store, the services and the
// HTTP layer.
type DomainError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError.
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

// NewStorageError marks err as a failure of the underlying database during op.
func NewStorageError(op string, err error) *DomainError {
	return NewError(CodeStorageUnavailable, "storage unavailable during "+op, err)
}

// NewValidationError reports the given invalid fields.
func NewValidationError(fields ...FieldError) *DomainError {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Field
	}
	e := NewError(CodeValidation, "invalid "+strings.Join(names, ", "), nil)
	e.Fields = fields
	return e
}

func NewInvalidSessionError(message string) *DomainError {
	return NewError(CodeInvalidSession, message, nil)
}

// IsCode reports whether err wraps a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
