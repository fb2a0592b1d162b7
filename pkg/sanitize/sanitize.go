// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize cleans free-form text before it is validated or stored.
//
// # Usage
//
// Catalog names are compared byte-for-byte when checking uniqueness, so two
// visually identical names ("Gomu Gomu" typed with a decomposed accent, or with
// trailing spaces) must reduce to the same canonical form first.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Text trims surrounding whitespace and normalizes the string to Unicode NFC.
//
// # Transformation Pipeline
//
// 1. Composes combining sequences (e + combining acute → é).
// 2. Trims leading and trailing Unicode whitespace.
func Text(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Nullable cleans s and returns nil when nothing is left.
//
// Optional text columns store NULL instead of an empty string.
func Nullable(s string) *string {
	cleaned := Text(s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// NullablePtr is [Nullable] for an already optional value.
func NullablePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return Nullable(*s)
}
