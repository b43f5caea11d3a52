// Package errors defines the sentinel errors shared across flow-common and a
// small accumulator for collecting multiple errors into one.
package errors

import "errors"

var (
	// ErrValidation is the single error kind surfaced when a candidate value
	// does not conform to an expected format. Callers can detect validation
	// failures with errors.Is(err, errors.ErrValidation) regardless of which
	// check produced them.
	ErrValidation = errors.New("validation failed")

	// ErrNotFitted is returned when a fittable object is used before it has
	// been fitted.
	ErrNotFitted = errors.New("not fitted")

	// ErrWrongType is returned when a value has a different dynamic type than
	// the one a caller required.
	ErrWrongType = errors.New("wrong type")
)

// Collection accumulates errors from multiple operations so they can be
// returned together. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear resets the collection to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if at least one error has been collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the sole error when there is one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
