package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field with three states: absent (not mentioned),
// null (explicitly cleared) and a concrete value.
// The zero value is absent. When decoded from JSON a missing key stays
// absent, a literal null becomes null, anything else becomes a value.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns an Optional that explicitly clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was mentioned at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was explicitly cleared.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and true when the field holds a concrete value.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// Ptr returns nil for absent and null, otherwise a pointer to a copy of the value.
func (o Optional[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
