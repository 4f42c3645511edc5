package bookshelf

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// CatalogError is the error type surfaced by validators and the catalog
// store. Handlers map each code to exactly one HTTP status.
type CatalogError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("[%s] %s (fields: %s)", e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewValidationError creates a validation error naming the missing or
// invalid fields.
func NewValidationError(fields ...string) *CatalogError {
	message := fmt.Sprintf("%s are required fields.", joinFields(fields))
	if len(fields) == 1 {
		message = fmt.Sprintf("%s is a required field.", fields[0])
	}
	return &CatalogError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a not-found error for a missing key.
func NewNotFoundError(message string) *CatalogError {
	return &CatalogError{Code: ErrCodeNotFound, Message: message}
}

// NewConflictError creates a conflict error for a failed conditional write.
func NewConflictError(message string) *CatalogError {
	return &CatalogError{Code: ErrCodeConflict, Message: message}
}

// NewStoreError wraps a transport or throttling failure from the underlying
// store. The original error message is preserved; retry policy is the
// caller's concern.
func NewStoreError(operation string, err error) *CatalogError {
	return &CatalogError{
		Code:    ErrCodeStoreUnavailable,
		Message: fmt.Sprintf("%s failed: %v", operation, err),
	}
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return hasCode(err, ErrCodeConflict)
}

func hasCode(err error, code string) bool {
	var ce *CatalogError
	return errors.As(err, &ce) && ce.Code == code
}

// joinFields renders ["a"], ["a","b"] and ["a","b","c"] as "a", "a and b"
// and "a, b, and c" to match the message style clients already parse.
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
	}
}
