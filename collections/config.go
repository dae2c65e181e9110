package collections

import (
	"math"
	"reflect"
)

// Config holds the per-collection settings applied by [NewWithConfig].
type Config[T any] struct {
	// Equal reports whether two items are the same item. It is used by
	// FindIndex, FindLastIndex, RemoveItem and ReplaceItem.
	// Defaults to Go's == on the dynamic values when nil.
	Equal func(a, b T) bool
}

// DefaultConfig returns a [Config] populated with the default equality.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{Equal: strictEqual[T]}
}

// strictEqual compares a and b with ==. Values whose dynamic type is not
// comparable (slices, maps, funcs, or structs holding them) never match.
func strictEqual[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if !reflect.ValueOf(x).Comparable() || !reflect.ValueOf(y).Comparable() {
		return false
	}
	return x == y
}

// truthy reports whether item is neither a zero value nor NaN. Zero structs
// and arrays are falsy.
func truthy[T any](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() || v.IsZero() {
		return false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return !math.IsNaN(real(c)) && !math.IsNaN(imag(c))
	}
	return true
}
