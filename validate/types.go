package validate

import (
	"fmt"
	"reflect"

	"github.com/flowlabs/flow-common/errors"
	"github.com/flowlabs/flow-common/seqfmt"
)

// IsType indicates whether the value's dynamic type is assignable to at
// least one of the expected types. This is an isinstance-style test: an
// interface type is satisfied by any implementation, a concrete type only by
// itself. A nil value satisfies nothing; no expected types means any
// non-nil value passes.
func IsType(value any, expected ...reflect.Type) bool {
	if value == nil {
		return false
	}

	if len(expected) == 0 {
		return true
	}

	vt := reflect.TypeOf(value)

	for _, exp := range expected {
		if exp == nil {
			continue
		}

		if vt.AssignableTo(exp) {
			return true
		}
	}

	return false
}

// CheckType returns the value unchanged when its dynamic type is assignable
// to one of the expected types, and an errors.ErrValidation-wrapped error
// otherwise. inputName is used only for the error message and defaults to
// "input".
func CheckType(value any, inputName string, expected ...reflect.Type) (any, error) {
	if IsType(value, expected...) {
		return value, nil
	}

	if inputName == "" {
		inputName = "input"
	}

	got := seqfmt.TypeName(reflect.TypeOf(value))

	allowed := seqfmt.Format(expected, seqfmt.WithLastSep("or"))
	if allowed == "" {
		return nil, fmt.Errorf("%w: invalid %q, %q should be a non-nil value, but got %s",
			errors.ErrValidation, inputName, inputName, got)
	}

	return nil, fmt.Errorf("%w: invalid %q, %q should be of type %s, but got %s",
		errors.ErrValidation, inputName, inputName, allowed, got)
}

// IsSequence indicates whether seq is an ordered sequence (a slice or an
// array; never a string) whose elements are all assignable to one of the
// element types. With no element types, any slice or array passes.
func IsSequence(seq any, elementType ...reflect.Type) bool {
	if seq == nil {
		return false
	}

	val := reflect.ValueOf(seq)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
	default:
		return false
	}

	if len(elementType) == 0 {
		return true
	}

	for i := 0; i < val.Len(); i++ {
		if !IsType(val.Index(i).Interface(), elementType...) {
			return false
		}
	}

	return true
}

// CheckSequence returns seq unchanged when it conforms per IsSequence, and
// an errors.ErrValidation-wrapped error otherwise. sequenceName is used only
// for the error message and defaults to "input".
func CheckSequence(seq any, sequenceName string, elementType ...reflect.Type) (any, error) {
	if IsSequence(seq, elementType...) {
		return seq, nil
	}

	if sequenceName == "" {
		sequenceName = "input"
	}

	expected := "a sequence"
	if len(elementType) > 0 {
		expected += " of " + seqfmt.Format(elementType, seqfmt.WithLastSep("or")) + " elements"
	}

	return nil, fmt.Errorf("%w: invalid %q, %q should be %s",
		errors.ErrValidation, sequenceName, sequenceName, expected)
}
