// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package optional models a JSON field in a partial update payload.

A field can be in one of three states:

  - Not provided: the key is absent from the body, the column is left untouched.
  - Null: the key is present with a JSON null, the column is cleared.
  - Value: the key is present with a value, the column is overwritten.

Usage:

	type Patch struct {
		Bounty optional.Field[int64] `json:"bounty"`
	}

encoding/json only calls UnmarshalJSON for keys that are present, which is
what lets [Field.Provided] tell the first state apart from the other two.
*/
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state wrapper around T.
type Field[T any] struct {
	provided bool
	null     bool
	value    T
}

// Of returns a provided, non-null field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{provided: true, value: v}
}

// Null returns a provided field that clears the column.
func Null[T any]() Field[T] {
	return Field[T]{provided: true, null: true}
}

// Provided reports whether the key appeared in the payload.
func (f Field[T]) Provided() bool { return f.provided }

// IsNull reports whether the key appeared with an explicit null.
func (f Field[T]) IsNull() bool { return f.provided && f.null }

// HasValue reports whether the key appeared with a non-null value.
func (f Field[T]) HasValue() bool { return f.provided && !f.null }

// Value returns the carried value; it is the zero value unless [Field.HasValue].
func (f Field[T]) Value() T { return f.value }

// Ptr returns nil for a null field and a pointer to the value otherwise.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.value
	return &v
}

// UnmarshalJSON implements [json.Unmarshaler].
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.provided = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}

	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON implements [json.Marshaler]. Fields that are not provided encode as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
