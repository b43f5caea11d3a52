// Package lazy provides values that are initialized on first use.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Of holds a value that is computed at most once, on first access.
type Of[T any] struct {
	create      func() T
	once        sync.Once
	value       T
	initialized atomic.Bool
}

// New creates a lazy value. The callback runs later, when the value is first
// accessed through Get.
func New[T any](create func() T) *Of[T] {
	return &Of[T]{create: create}
}

// Get returns the value, initializing it if necessary. If the initializer
// panics, the once state is reset so a later Get can retry.
func (l *Of[T]) Get() T { //nolint:ireturn
	defer func() {
		if r := recover(); r != nil {
			l.once = sync.Once{}

			panic(r)
		}
	}()

	l.once.Do(func() {
		if l.create != nil {
			l.value = l.create()
			l.initialized.Store(true)
			l.create = nil
		}
	})

	return l.value
}

// Set overrides the value, skipping the initializer entirely.
func (l *Of[T]) Set(value T) {
	l.create = nil
	l.value = value
	l.initialized.Store(true)
}

// Initialized reports whether the value has been computed or set. Intended
// for tests and debugging only.
func (l *Of[T]) Initialized() bool {
	return l.initialized.Load()
}
