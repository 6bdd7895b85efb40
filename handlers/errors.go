package handlers

import (
	"errors"
	"fmt"
)

// Sentinel errors for quotation operations.
var (
	ErrQuotationNotFound    = errors.New("quotation not found")
	ErrUnauthorizedUploader = errors.New("uploader is not authorized to attach quotation files")
)

// ValidationError reports a missing or malformed input field. It is returned
// before any upload, persistence or notification takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
