// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for
// equality. Implementations decide what equality means for their own type.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Fn adapts an equality function into a Comparable over a captured value.
// This is useful when the compared type is not under the caller's control.
type Fn[T any] struct {
	Value T
	Eq    func(a, b T) bool
}

// Equals reports whether the captured value equals other according to Eq.
func (f Fn[T]) Equals(other T) bool {
	return f.Eq(f.Value, other)
}
