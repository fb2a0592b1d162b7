// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. Rules are pure: they only look at the candidate value and its
// constraints, so a failing rule can never leave a half-written row behind.
//
// Every failure carries the INVALID_<FIELD> reason code of the field it belongs to.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/grandline/internal/platform/apperr"
)

var (
	// shapes checks string formats. It caches struct metadata and is safe for concurrent use.
	shapes = validator.New()

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.BadRequest(apperr.CodeInvalidJSON, "Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, fmt.Sprintf("%s is required", Label(field)))
	}
	return v
}

// MaxLen fails if the character count of the trimmed value exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		v.add(field, fmt.Sprintf("%s must be at most %d characters", Label(field), max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("%s must be between %d and %d", Label(field), min, max))
	}
	return v
}

// NonNegative fails if the value is below zero.
func (v *Validator) NonNegative(field string, value int64) *Validator {
	if value < 0 {
		v.add(field, fmt.Sprintf("%s must be a non-negative integer", Label(field)))
	}
	return v
}

// PositiveID fails if a reference id is not a positive integer.
func (v *Validator) PositiveID(field string, value int) *Validator {
	if value < 1 {
		v.add(field, fmt.Sprintf("%s must be a positive integer", Label(field)))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("%s must be one of: %s", Label(field), strings.Join(allowed, ", ")))
	return v
}

// URL fails if the value is not an absolute http(s) URL with a host.
func (v *Validator) URL(field, value string) *Validator {
	if shapes.Var(value, "required,http_url") != nil {
		v.add(field, fmt.Sprintf("%s must be a valid URL", Label(field)))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("previous_users", hasDuplicates, "Previous users must not repeat")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a 400 [apperr.AppError] if any rules failed, or nil if all rules passed.
//
// The first failure decides the top-level reason code and message; every
// failure is listed in the details.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.Validation(v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{
		Field:   field,
		Code:    apperr.FieldCode(field),
		Message: message,
	})
}

// Label turns a JSON field name into the subject of a message ("race_id" → "Race id").
func Label(field string) string {
	words := strings.ReplaceAll(field, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}
