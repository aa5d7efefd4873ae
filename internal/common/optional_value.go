// Package common provides small shared data types used by the chksum packages.
//
//nolint:revive // "common" is an appropriate name for shared utilities package
package common

// Numeric is a constraint for numeric types that can be used with OptionalValue.
type Numeric interface {
	~int | ~int64
}

// OptionalValue represents a numeric value that is either unset or explicitly set.
//
// An unset value means "let the consumer choose a default". This type keeps that
// distinction explicit instead of overloading the zero value.
type OptionalValue[T Numeric] struct {
	value *T
}

// NewOptionalValue creates an OptionalValue with the specified value.
func NewOptionalValue[T Numeric](value T) OptionalValue[T] {
	return OptionalValue[T]{value: &value}
}

// IsSet returns true if the value has been explicitly set.
func (o OptionalValue[T]) IsSet() bool {
	return o.value != nil
}

// Value returns the value.
// Panics if the value is not set; callers must check IsSet() first.
func (o OptionalValue[T]) Value() T {
	if o.value == nil {
		panic("OptionalValue.Value() called on unset value: use IsSet() to check if the value is set before calling Value()")
	}
	return *o.value
}

// ValueOr returns the value if set, otherwise def.
func (o OptionalValue[T]) ValueOr(def T) T {
	if o.value == nil {
		return def
	}
	return *o.value
}

// Equal reports whether both values are unset, or both set to the same value.
func (o OptionalValue[T]) Equal(other OptionalValue[T]) bool {
	if o.value == nil || other.value == nil {
		return o.value == nil && other.value == nil
	}
	return *o.value == *other.value
}
