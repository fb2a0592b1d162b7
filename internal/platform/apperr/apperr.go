// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Grandline.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable reason code and a client-safe message.
  - Taxonomy: One constructor per reason code (INVALID_ID, DUPLICATE_NAME, HAS_ASSOCIATIONS...).
  - Mapping: Every reason code carries its HTTP status, so handlers never pick one by hand.

Every error that leaves the service layer should be an [AppError] so that the
response envelope stays uniform.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// # Reason Codes

const (
	CodeInvalidID         = "INVALID_ID"
	CodeInvalidPagination = "INVALID_PAGINATION"
	CodeInvalidSort       = "INVALID_SORT"
	CodeInvalidJSON       = "INVALID_JSON"
	CodeNoFieldsProvided  = "NO_FIELDS_PROVIDED"
	CodeDuplicateName     = "DUPLICATE_NAME"
	CodeNotFound          = "NOT_FOUND"
	CodeHasAssociations   = "HAS_ASSOCIATIONS"
	CodeNoToken           = "NO_TOKEN"
	CodeBadFormat         = "BAD_FORMAT"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeInvalidLogin      = "INVALID_CREDENTIALS"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the Grandline API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and optional per-field details.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// outside of development mode.
type AppError struct {
	// Code is a machine-readable reason code (e.g. "NOT_FOUND", "INVALID_NAME").
	Code string `json:"error"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation failures.
	Details []FieldError `json:"details,omitempty"`
	// Count carries the number of dependent rows for HAS_ASSOCIATIONS.
	Count int `json:"count,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Code is the field-specific reason code (INVALID_<FIELD>).
	Code string `json:"code"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// BadRequest creates a 400 [AppError] with an explicit reason code.
func BadRequest(code, msg string) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidID creates the 400 error for a path id that is not a positive integer.
func InvalidID() *AppError {
	return BadRequest(CodeInvalidID, "Invalid ID format. ID must be a positive integer")
}

// InvalidPagination creates a 400 [AppError] for out-of-range page/limit values.
func InvalidPagination(msg string) *AppError {
	return BadRequest(CodeInvalidPagination, msg)
}

// InvalidSort creates a 400 [AppError] for a sort column outside the allow-list.
func InvalidSort(msg string) *AppError {
	return BadRequest(CodeInvalidSort, msg)
}

// NoFieldsProvided creates the 400 error for an empty partial update.
func NoFieldsProvided() *AppError {
	return BadRequest(CodeNoFieldsProvided, "No fields provided for update")
}

// Field creates a 400 [AppError] for a single field failure.
//
// Example:
//
//	apperr.Field("race_id", "Race with ID 7 does not exist") // INVALID_RACE_ID
func Field(field, msg string) *AppError {
	code := FieldCode(field)
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    []FieldError{{Field: field, Code: code, Message: msg}},
	}
}

// Validation creates a 400 [AppError] from one or more field failures.
// The first failure decides the reason code and the message.
func Validation(details ...FieldError) *AppError {
	if len(details) == 0 {
		return BadRequest("VALIDATION_ERROR", "Validation failed")
	}
	return &AppError{
		Code:       details[0].Code,
		Message:    details[0].Message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// FieldCode derives the INVALID_<FIELD> reason code for a JSON field name.
func FieldCode(field string) string {
	return "INVALID_" + strings.ToUpper(field)
}

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Fruit type") // Returns "Fruit type not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// DuplicateName creates a 409 [AppError] for a name collision within a family.
func DuplicateName(resource string) *AppError {
	return &AppError{
		Code:       CodeDuplicateName,
		Message:    resource + " name already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// HasAssociations creates a 409 [AppError] blocking a delete while dependents exist.
func HasAssociations(resource string, count int, dependents string) *AppError {
	return &AppError{
		Code:       CodeHasAssociations,
		Message:    fmt.Sprintf("Cannot delete %s because it has %d associated %s", strings.ToLower(resource), count, dependents),
		HTTPStatus: http.StatusConflict,
		Count:      count,
	}
}

// Conflict creates a 409 [AppError] with an explicit reason code.
func Conflict(code, msg string) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(code, msg string) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] carrying the given reason code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
