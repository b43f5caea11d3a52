package namedobjects

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/flowlabs/flow-common/errors"
	"github.com/flowlabs/flow-common/logger"
	"github.com/flowlabs/flow-common/objects"
	"github.com/flowlabs/flow-common/set"
	"github.com/flowlabs/flow-common/tuple"
	"github.com/flowlabs/flow-common/validate"
)

// Named builds the canonical (name, object) entry for a named object
// sequence.
func Named(name string, object objects.Object) tuple.Pair[string, objects.Object] {
	return tuple.PairOf(name, object)
}

// IsSequence indicates whether the candidate is a conforming named object
// sequence: an ordered sequence (slice or array) of two-element (string
// name, object) pairs, or a map from string name to object unless
// DisallowMap is set, where every object satisfies the configured type
// constraint. Pure; the candidate is inspected, never mutated.
//
// Sequence entries may be two-field structs such as tuple.Pair, or slices
// and arrays of length two. A plain string is not a sequence of its
// characters. Empty sequences and maps conform vacuously.
func IsSequence(candidate any, opts ...Option) bool {
	o := buildOptions(opts)
	res := inspect(candidate, o)

	checksTotal.WithLabelValues(res.shape, strconv.FormatBool(res.conforming)).Inc()

	return res.conforming
}

// Check runs the same validation as IsSequence and returns the candidate
// unchanged, the identical reference rather than a copy, when it conforms.
// Otherwise it returns an errors.ErrValidation-wrapped error describing the
// expected format. There is no coercion path: a map is never converted into
// a sequence or vice versa.
func Check(candidate any, opts ...Option) (any, error) {
	o := buildOptions(opts)
	res := inspect(candidate, o)

	checksTotal.WithLabelValues(res.shape, strconv.FormatBool(res.conforming)).Inc()

	if !res.conforming {
		if len(res.duplicates) > 0 {
			logger.Get().Debug("named object sequence has duplicate names",
				"sequence", displayName(o), "names", res.duplicates)
		}

		return nil, fmt.Errorf("%w: %s", errors.ErrValidation, errorMessage(o))
	}

	return candidate, nil
}

// CheckAs is Check with the candidate's static type preserved, so callers
// keep their slice or map type without a type assertion.
func CheckAs[T any](candidate T, opts ...Option) (T, error) {
	if _, err := Check(candidate, opts...); err != nil {
		var zero T

		return zero, err
	}

	return candidate, nil
}

// result carries the outcome of one inspection. duplicates lists duplicated
// names in natural sort order when uniqueness was the deciding failure.
type result struct {
	conforming bool
	shape      string
	duplicates []string
}

const (
	shapeMap      = "map"
	shapeSequence = "sequence"
	shapeInvalid  = "invalid"
)

// inspect decides conformance. Fails fast on candidates that are neither
// maps nor ordered sequences, and on maps when the map shape is disallowed.
func inspect(candidate any, o options) result {
	if candidate == nil {
		return result{shape: shapeInvalid}
	}

	val := reflect.ValueOf(candidate)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Map:
		if !o.allowMap {
			return result{shape: shapeMap}
		}

		return result{shape: shapeMap, conforming: mapConforms(val, o)}
	case reflect.Slice, reflect.Array:
		return sequenceResult(val, o)
	default:
		return result{shape: shapeInvalid}
	}
}

// mapConforms requires every key to be a string and every value to satisfy
// the object constraint. Map keys are unique by construction, so uniqueness
// never fails for this shape.
func mapConforms(val reflect.Value, o options) bool {
	iter := val.MapRange()
	for iter.Next() {
		if !isString(iter.Key()) {
			return false
		}

		if !validate.IsType(iter.Value().Interface(), o.objectType) {
			return false
		}
	}

	return true
}

// sequenceResult checks every element against the (string name, object) pair
// format and computes name uniqueness. Names are collected only from
// well-formed entries, so a malformed entry never contributes to a
// duplicate-name failure; the format check already fails for it.
func sequenceResult(val reflect.Value, o options) result {
	allFormat := true
	counts := make(map[string]int, val.Len())

	for i := 0; i < val.Len(); i++ {
		name, object, ok := destructure(val.Index(i))
		if !ok || !validate.IsType(object, o.objectType) {
			allFormat = false

			continue
		}

		counts[name]++
	}

	dups := set.NewStrings()

	for name, count := range counts {
		if count > 1 {
			_ = dups.Add(name)
		}
	}

	allUnique := dups.Size() == 0

	return result{
		conforming: allFormat && (allUnique || !o.requireUniqueNames),
		shape:      shapeSequence,
		duplicates: dups.NaturalSortedEntries(),
	}
}

// destructure splits a sequence element into its name and object
// components. Accepted pair encodings are structs with exactly two exported
// fields (first the name, second the object) and slices or arrays of length
// two. The name component must be a string.
func destructure(elem reflect.Value) (string, any, bool) {
	elem = unwrap(elem)
	if !elem.IsValid() {
		return "", nil, false
	}

	var nameVal, objVal reflect.Value

	switch elem.Kind() { //nolint:exhaustive
	case reflect.Struct:
		if elem.NumField() != 2 {
			return "", nil, false
		}

		nameVal, objVal = elem.Field(0), elem.Field(1)
	case reflect.Slice, reflect.Array:
		if elem.Len() != 2 {
			return "", nil, false
		}

		nameVal, objVal = elem.Index(0), elem.Index(1)
	default:
		return "", nil, false
	}

	if !nameVal.CanInterface() || !objVal.CanInterface() {
		return "", nil, false
	}

	nameVal = unwrap(nameVal)
	if !isString(nameVal) {
		return "", nil, false
	}

	return nameVal.String(), objVal.Interface(), true
}

// unwrap peels one interface layer off a value. Nil interfaces become the
// invalid value.
func unwrap(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		return v.Elem()
	}

	return v
}

func isString(v reflect.Value) bool {
	v = unwrap(v)

	return v.IsValid() && v.Kind() == reflect.String
}
